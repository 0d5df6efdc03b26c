package service

import (
	"testing"

	"deptbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDialogService_GetDefaultsToIdle(t *testing.T) {
	s := NewDialogService()

	state := s.Get(12345)

	assert.Equal(t, domain.StateIdle, state.State)
	assert.False(t, state.Greeted)
}

func TestDialogService_StateTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from     domain.State
		to       domain.State
		expected domain.State
	}{
		{
			name:     "idle to awaiting question",
			from:     domain.StateIdle,
			to:       domain.StateAwaitingQuestion,
			expected: domain.StateAwaitingQuestion,
		},
		{
			name:     "awaiting question self loop",
			from:     domain.StateAwaitingQuestion,
			to:       domain.StateAwaitingQuestion,
			expected: domain.StateAwaitingQuestion,
		},
		{
			name:     "idle to awaiting feedback",
			from:     domain.StateIdle,
			to:       domain.StateAwaitingFeedback,
			expected: domain.StateAwaitingFeedback,
		},
		{
			name:     "awaiting feedback back to idle",
			from:     domain.StateAwaitingFeedback,
			to:       domain.StateIdle,
			expected: domain.StateIdle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDialogService()
			userID := int64(42)

			s.SetState(userID, tt.from)
			s.SetState(userID, tt.to)

			assert.Equal(t, tt.expected, s.Get(userID).State)
		})
	}
}

func TestDialogService_Reset(t *testing.T) {
	s := NewDialogService()

	s.SetState(42, domain.StateAwaitingQuestion)
	s.Reset(42)

	assert.Equal(t, domain.StateIdle, s.Get(42).State)
}

func TestDialogService_StatesAreIndependentPerUser(t *testing.T) {
	s := NewDialogService()

	s.SetState(1, domain.StateAwaitingQuestion)
	s.SetState(2, domain.StateAwaitingFeedback)

	assert.Equal(t, domain.StateAwaitingQuestion, s.Get(1).State)
	assert.Equal(t, domain.StateAwaitingFeedback, s.Get(2).State)
	assert.Equal(t, domain.StateIdle, s.Get(3).State)
}

func TestDialogService_FirstContact(t *testing.T) {
	s := NewDialogService()

	assert.True(t, s.FirstContact(42))
	assert.False(t, s.FirstContact(42))

	// Greeting survives state changes
	s.SetState(42, domain.StateAwaitingQuestion)
	assert.False(t, s.FirstContact(42))
	assert.True(t, s.Get(42).Greeted)
}
