package handler

import (
	"deptbot/internal/menu"
	"deptbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// msgError is the generic user-visible failure reply; detail never leaks to users
const msgError = "An error occurred. Please try again."

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	menu     *menu.Registry
	dialogs  *service.DialogService
	ask      *service.AskService
	feedback *service.FeedbackService
	stats    *service.StatsService
	admin    *service.AdminService
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	registry *menu.Registry,
	dialogs *service.DialogService,
	ask *service.AskService,
	feedback *service.FeedbackService,
	stats *service.StatsService,
	admin *service.AdminService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		menu:     registry,
		dialogs:  dialogs,
		ask:      ask,
		feedback: feedback,
		stats:    stats,
		admin:    admin,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/ask", h.handleAsk)
	h.bot.Handle("/faq", h.handleFAQ)
	h.bot.Handle("/feedback", h.handleFeedback)

	// Admin-only commands
	h.bot.Handle("/get_bot_info", h.handleBotInfo)
	h.bot.Handle("/get_bot_usage", h.handleBotUsage)

	// Inline buttons; every key goes through the menu registry
	h.bot.Handle(tele.OnCallback, h.handleCallback)

	// Free text
	h.bot.Handle(tele.OnText, h.handleText)
}

// markupFor renders a menu node's buttons as an inline keyboard
func markupFor(node *menu.Node) *tele.ReplyMarkup {
	if len(node.Buttons) == 0 {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(node.Buttons))
	for _, row := range node.Buttons {
		btns := make([]tele.Btn, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				btns = append(btns, markup.URL(b.Label, b.URL))
			} else {
				btns = append(btns, markup.Data(b.Label, b.Key))
			}
		}
		rows = append(rows, markup.Row(btns...))
	}
	markup.Inline(rows...)
	return markup
}

// sendNode sends a node's text with its keyboard, if any
func (h *Handler) sendNode(c tele.Context, node *menu.Node) error {
	if markup := markupFor(node); markup != nil {
		return c.Send(node.Text, markup)
	}
	return c.Send(node.Text)
}

// showExitOption offers the absorbing Exit affordance after a terminal reply
func (h *Handler) showExitOption(c tele.Context) error {
	return h.sendNode(c, h.menu.Fallback())
}

// showRootMenu greets first-time users and renders the root menu
func (h *Handler) showRootMenu(c tele.Context) error {
	sender := c.Sender()

	if h.dialogs.FirstContact(sender.ID) {
		welcome := "Hi, " + sender.Username + " ! Welcome to the School of Information Science Department Bot. " +
			"I'm your friendly assistant. How can I help you today?"
		if err := c.Send(welcome); err != nil {
			return err
		}
	}

	h.dialogs.Reset(sender.ID)
	return h.sendNode(c, h.menu.Root())
}
