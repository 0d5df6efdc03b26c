package service

import (
	"context"
	"fmt"
	"time"

	"deptbot/internal/domain"
	"deptbot/internal/genai"

	"go.uber.org/zap"
)

// AskService forwards free-text questions to the text-generation collaborator
type AskService struct {
	generator genai.Generator
	stats     *StatsService
	timeout   time.Duration
	logger    *zap.Logger
}

// NewAskService creates a new ask service. The timeout bounds each
// generation call so a hung upstream cannot stall the user's dialog forever.
func NewAskService(generator genai.Generator, stats *StatsService, timeout time.Duration, logger *zap.Logger) *AskService {
	return &AskService{
		generator: generator,
		stats:     stats,
		timeout:   timeout,
		logger:    logger,
	}
}

// Ask answers a question with the generator's output, verbatim. The attempt
// is logged whether or not generation succeeds; failures are not retried.
func (s *AskService) Ask(ctx context.Context, userID int64, question string) (string, error) {
	s.stats.LogAction(userID, domain.ActionAskQuestion)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.generator.Generate(ctx, question)
	if err != nil {
		s.logger.Error("Generation failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return "", fmt.Errorf("generate answer: %w", err)
	}

	return answer, nil
}
