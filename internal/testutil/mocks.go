package testutil

import (
	"context"

	"deptbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockActionRepository is a mock for repository.ActionRepository
type MockActionRepository struct {
	mock.Mock
}

func (m *MockActionRepository) LogAction(userID int64, action string) error {
	args := m.Called(userID, action)
	return args.Error(0)
}

func (m *MockActionRepository) Summary() (domain.UsageSummary, error) {
	args := m.Called()
	return args.Get(0).(domain.UsageSummary), args.Error(1)
}

// MockGenerator is a mock for genai.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyAdmin(text string) error {
	args := m.Called(text)
	return args.Error(0)
}
