package memory

import (
	"sync"

	"deptbot/internal/domain"
)

// ActionRepo implements repository.ActionRepository in process memory.
// It is the default backend when no database is configured. Entries are
// never evicted; unbounded growth is a documented limitation.
type ActionRepo struct {
	mu      sync.Mutex
	actions map[int64][]string
}

// NewActionRepo creates an empty in-memory action log
func NewActionRepo() *ActionRepo {
	return &ActionRepo{actions: make(map[int64][]string)}
}

// LogAction appends an action to the user's log
func (r *ActionRepo) LogAction(userID int64, action string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions[userID] = append(r.actions[userID], action)
	return nil
}

// Summary aggregates the log into distinct-user and per-action counts.
// The most common action breaks ties by iteration order; which action wins
// a tie is not deterministic.
func (r *ActionRepo) Summary() (domain.UsageSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summary := domain.UsageSummary{
		TotalUsers:   len(r.actions),
		ActionCounts: make(map[string]int),
	}

	for _, actions := range r.actions {
		for _, action := range actions {
			summary.ActionCounts[action]++
		}
	}

	best := 0
	for action, count := range summary.ActionCounts {
		if count > best {
			best = count
			summary.MostCommonAction = action
		}
	}

	return summary, nil
}
