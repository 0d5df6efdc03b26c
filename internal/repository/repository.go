package repository

import (
	"deptbot/internal/domain"
)

// ActionRepository defines the append-only usage log operations
type ActionRepository interface {
	LogAction(userID int64, action string) error
	Summary() (domain.UsageSummary, error)
}
