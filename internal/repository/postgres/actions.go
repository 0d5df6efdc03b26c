package postgres

import (
	"database/sql"

	"deptbot/internal/domain"
)

// ActionRepo implements repository.ActionRepository on PostgreSQL. It is the
// durable backend used when a database is configured.
type ActionRepo struct {
	db *sql.DB
}

// NewActionRepo creates a new action repository
func NewActionRepo(db *sql.DB) *ActionRepo {
	return &ActionRepo{db: db}
}

// LogAction appends an action row for the user
func (r *ActionRepo) LogAction(userID int64, action string) error {
	query := `INSERT INTO actions (user_id, action) VALUES ($1, $2)`
	_, err := r.db.Exec(query, userID, action)
	return err
}

// Summary aggregates the action log. The most common action is the first row
// of the count-ordered grouping; ties resolve by whatever order the database
// returns equal counts in.
func (r *ActionRepo) Summary() (domain.UsageSummary, error) {
	summary := domain.UsageSummary{
		ActionCounts: make(map[string]int),
	}

	query := `SELECT COUNT(DISTINCT user_id) FROM actions`
	if err := r.db.QueryRow(query).Scan(&summary.TotalUsers); err != nil {
		return domain.UsageSummary{}, err
	}

	query = `SELECT action, COUNT(*) FROM actions GROUP BY action ORDER BY COUNT(*) DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return domain.UsageSummary{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var action string
		var count int
		if err := rows.Scan(&action, &count); err != nil {
			return domain.UsageSummary{}, err
		}
		if summary.MostCommonAction == "" {
			summary.MostCommonAction = action
		}
		summary.ActionCounts[action] = count
	}
	if err := rows.Err(); err != nil {
		return domain.UsageSummary{}, err
	}

	return summary, nil
}
