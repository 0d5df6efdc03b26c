package service

import (
	"errors"
	"testing"

	"deptbot/internal/domain"
	"deptbot/internal/repository/memory"
	"deptbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_UsageSummary(t *testing.T) {
	logger := testutil.NewTestLogger()
	s := NewStatsService(memory.NewActionRepo(), logger)

	s.LogAction(42, domain.ActionAskQuestion)
	s.LogAction(42, domain.ActionAskQuestion)
	s.LogAction(42, domain.ActionAskQuestion)
	s.LogAction(7, domain.ActionSendFeedback)

	summary, err := s.UsageSummary()

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalUsers)
	assert.Equal(t, 3, summary.ActionCounts[domain.ActionAskQuestion])
	assert.Equal(t, 1, summary.ActionCounts[domain.ActionSendFeedback])
	assert.Equal(t, domain.ActionAskQuestion, summary.MostCommonAction)
}

func TestStatsService_LogActionSwallowsRepositoryErrors(t *testing.T) {
	repo := new(testutil.MockActionRepository)
	repo.On("LogAction", int64(1), domain.ActionSendMessage).Return(errors.New("insert failed"))

	s := NewStatsService(repo, testutil.NewTestLogger())

	// Must not panic or propagate; dialog handling continues regardless
	s.LogAction(1, domain.ActionSendMessage)

	repo.AssertExpectations(t)
}
