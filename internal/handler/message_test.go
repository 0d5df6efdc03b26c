package handler

import (
	"testing"

	"deptbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRouteText(t *testing.T) {
	tests := []struct {
		name     string
		state    domain.State
		text     string
		expected textRoute
	}{
		{
			name:     "awaiting question gets the AI branch",
			state:    domain.StateAwaitingQuestion,
			text:     "what courses run in 3rd year?",
			expected: routeQuestion,
		},
		{
			name:     "question flag wins even over command text",
			state:    domain.StateAwaitingQuestion,
			text:     "/weird",
			expected: routeQuestion,
		},
		{
			name:     "awaiting feedback gets the feedback branch",
			state:    domain.StateAwaitingFeedback,
			text:     "love the bot",
			expected: routeFeedback,
		},
		{
			name:     "idle command marker is unknown command",
			state:    domain.StateIdle,
			text:     "/bogus",
			expected: routeUnknownCommand,
		},
		{
			name:     "idle plain chatter gets the generic prompt",
			state:    domain.StateIdle,
			text:     "hello there",
			expected: routeDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, routeText(tt.state, tt.text))
		})
	}
}
