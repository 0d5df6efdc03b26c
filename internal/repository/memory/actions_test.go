package memory

import (
	"testing"

	"deptbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestActionRepo_SummaryEmpty(t *testing.T) {
	repo := NewActionRepo()

	summary, err := repo.Summary()

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.TotalUsers)
	assert.Empty(t, summary.ActionCounts)
	assert.Equal(t, "", summary.MostCommonAction)
}

func TestActionRepo_SummaryCountsMatchLoggedActions(t *testing.T) {
	repo := NewActionRepo()

	assert.NoError(t, repo.LogAction(42, domain.ActionAskQuestion))
	assert.NoError(t, repo.LogAction(42, domain.ActionAskQuestion))
	assert.NoError(t, repo.LogAction(42, domain.ActionAskQuestion))
	assert.NoError(t, repo.LogAction(7, domain.ActionSendFeedback))

	summary, err := repo.Summary()

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalUsers)
	assert.Equal(t, map[string]int{
		domain.ActionAskQuestion:  3,
		domain.ActionSendFeedback: 1,
	}, summary.ActionCounts)
	assert.Equal(t, domain.ActionAskQuestion, summary.MostCommonAction)
}

func TestActionRepo_AppendOnly(t *testing.T) {
	repo := NewActionRepo()

	for i := 0; i < 5; i++ {
		assert.NoError(t, repo.LogAction(1, domain.ActionSendMessage))
	}

	summary, err := repo.Summary()

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.TotalUsers)
	assert.Equal(t, 5, summary.ActionCounts[domain.ActionSendMessage])
}
