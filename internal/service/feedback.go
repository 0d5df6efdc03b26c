package service

import (
	"errors"
	"fmt"

	"deptbot/internal/domain"

	"go.uber.org/zap"
)

// ErrNoAdminChat indicates no feedback channel is configured
var ErrNoAdminChat = errors.New("admin chat is not configured")

// Notifier delivers a message to the administrator channel
type Notifier interface {
	NotifyAdmin(text string) error
}

// FeedbackService forwards user feedback to the admin chat
type FeedbackService struct {
	notifier Notifier
	stats    *StatsService
	logger   *zap.Logger
}

// NewFeedbackService creates a new feedback service. A nil notifier means
// no admin chat is configured and every submission is rejected.
func NewFeedbackService(notifier Notifier, stats *StatsService, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		notifier: notifier,
		stats:    stats,
		logger:   logger,
	}
}

// Submit forwards feedback text to the admin chat. The attempt is logged
// even when no channel is configured.
func (s *FeedbackService) Submit(userID int64, handle, text string) error {
	s.stats.LogAction(userID, domain.ActionSendFeedback)

	if s.notifier == nil {
		return ErrNoAdminChat
	}

	if err := s.notifier.NotifyAdmin(fmt.Sprintf("Feedback from %s: %s", handle, text)); err != nil {
		s.logger.Error("Failed to forward feedback",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return fmt.Errorf("notify admin: %w", err)
	}

	return nil
}
