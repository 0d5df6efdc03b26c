package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"deptbot/internal/config"
	"deptbot/internal/genai"
	"deptbot/internal/handler"
	"deptbot/internal/menu"
	"deptbot/internal/middleware"
	"deptbot/internal/repository"
	memoryrepo "deptbot/internal/repository/memory"
	postgresrepo "deptbot/internal/repository/postgres"
	"deptbot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Department Assistant Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Build the static menu tree and verify no button points at a dead key
	registry := menu.New()
	if err := registry.Validate(); err != nil {
		logger.Fatal("Invalid menu tree", zap.Error(err))
	}

	// Pick the action-log backend: Postgres when configured, memory otherwise
	actionRepo, dbClose, err := buildActionRepo(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize action log", zap.Error(err))
	}
	if dbClose != nil {
		defer dbClose()
	}

	// Initialize text generation
	generator, err := genai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("Failed to create generator", zap.Error(err))
	}

	logger.Info("Gemini client initialized")

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:   cfg.BotToken,
		Poller:  &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: onBotError(logger),
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize services
	dialogService := service.NewDialogService()
	statsService := service.NewStatsService(actionRepo, logger)
	askService := service.NewAskService(generator, statsService, cfg.GenTimeout, logger)

	var notifier service.Notifier
	if cfg.AdminChatID != 0 {
		notifier = handler.NewAdminNotifier(bot, cfg.AdminChatID)
	} else {
		logger.Warn("ADMIN_CHAT_ID not set, feedback forwarding disabled")
	}
	feedbackService := service.NewFeedbackService(notifier, statsService, logger)
	adminService := service.NewAdminService(cfg.AdminHandle)

	// Initialize handler
	bot.Use(middleware.Recover(logger))
	h := handler.NewHandler(bot, registry, dialogService, askService, feedbackService, statsService, adminService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// onBotError maps transport errors to log levels. A 409 Conflict means
// another instance is polling the same token; that is a warning, not fatal.
func onBotError(logger *zap.Logger) func(error, tele.Context) {
	return func(err error, c tele.Context) {
		if err == nil {
			return
		}
		if strings.Contains(err.Error(), "409") || strings.Contains(err.Error(), "Conflict") {
			logger.Warn("Telegram conflict: another bot instance appears to be running", zap.Error(err))
			return
		}

		fields := []zap.Field{zap.Error(err)}
		if c != nil && c.Sender() != nil {
			fields = append(fields, zap.Int64("user_id", c.Sender().ID))
		}
		logger.Error("Bot error", fields...)
	}
}

// buildActionRepo returns the configured action-log repository and an
// optional close function for the database connection.
func buildActionRepo(cfg *config.Config, logger *zap.Logger) (repository.ActionRepository, func(), error) {
	if !cfg.DatabaseEnabled() {
		logger.Info("No database configured, keeping action log in memory")
		return memoryrepo.NewActionRepo(), nil, nil
	}

	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.Info("Database action log enabled")
	return postgresrepo.NewActionRepo(db), func() { db.Close() }, nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 10
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}
