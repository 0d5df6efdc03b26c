package testutil

import (
	"deptbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id int64, handle string) domain.User {
	return domain.User{
		ID:     id,
		Handle: handle,
	}
}
