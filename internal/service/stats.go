package service

import (
	"deptbot/internal/domain"
	"deptbot/internal/repository"

	"go.uber.org/zap"
)

// StatsService records user actions and aggregates them for admin reporting
type StatsService struct {
	actions repository.ActionRepository
	logger  *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(actions repository.ActionRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		actions: actions,
		logger:  logger,
	}
}

// LogAction appends an action to the usage log. Logging failures are
// reported but never interrupt the dialog being handled.
func (s *StatsService) LogAction(userID int64, action string) {
	if err := s.actions.LogAction(userID, action); err != nil {
		s.logger.Error("Failed to log action",
			zap.Int64("user_id", userID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// UsageSummary returns distinct-user and per-action counts
func (s *StatsService) UsageSummary() (domain.UsageSummary, error) {
	return s.actions.Summary()
}
