package service

import (
	"sync"

	"deptbot/internal/domain"
)

// DialogService is the in-memory per-user dialog state store. States are
// created lazily on first interaction and never destroyed; unbounded growth
// over the process lifetime is a documented limitation.
//
// The mutex serializes concurrent writes for the same user; the transport
// delivers one update per goroutine, so this map is the only shared state.
type DialogService struct {
	mu     sync.RWMutex
	states map[int64]*domain.DialogState
}

// NewDialogService creates an empty dialog state store
func NewDialogService() *DialogService {
	return &DialogService{states: make(map[int64]*domain.DialogState)}
}

// Get returns a copy of the user's dialog state, defaulting to Idle for a
// never-seen user
func (s *DialogService) Get(userID int64) domain.DialogState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.states[userID]; ok {
		return *state
	}
	return domain.DialogState{State: domain.StateIdle}
}

// SetState moves the user to the given dialog state
func (s *DialogService) SetState(userID int64, state domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure(userID).State = state
}

// Reset returns the user to Idle
func (s *DialogService) Reset(userID int64) {
	s.SetState(userID, domain.StateIdle)
}

// FirstContact marks the user as greeted and reports whether this was the
// first time the user was seen
func (s *DialogService) FirstContact(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.ensure(userID)
	if state.Greeted {
		return false
	}
	state.Greeted = true
	return true
}

// ensure returns the stored state for the user, creating the Idle default.
// Caller must hold the write lock.
func (s *DialogService) ensure(userID int64) *domain.DialogState {
	state, ok := s.states[userID]
	if !ok {
		state = &domain.DialogState{State: domain.StateIdle}
		s.states[userID] = state
	}
	return state
}
