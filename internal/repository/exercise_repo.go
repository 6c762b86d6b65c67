package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jensfenty/Exercise-Tracker/internal/models"

	"github.com/google/uuid"
)

type ExerciseSQLite struct {
	db *sql.DB
}

func NewExerciseSQLite(db *sql.DB) *ExerciseSQLite { return &ExerciseSQLite{db: db} }

var _ ExerciseRepo = (*ExerciseSQLite)(nil)

// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS"
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Create inserts a new exercise entry. If ID or Date are empty, they're set.
func (r *ExerciseSQLite) Create(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	} else {
		e.Date = e.Date.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO exercises (id, user_id, description, duration, date)
		VALUES (?, ?, ?, ?, ?)
	`,
		e.ID,
		e.UserID,
		e.Description,
		e.Duration,
		e.Date.Format(sqliteTimeLayout),
	)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("insert exercise for user %q: %w", e.UserID, err)
	}
	return e, nil
}

// ListByUser returns entries matching q, ordered by date ASC and capped at
// q.Limit when positive. A sentinel range bound simply matches nothing.
func (r *ExerciseSQLite) ListByUser(ctx context.Context, q LogQuery) ([]models.Exercise, error) {
	conds := []string{"user_id = ?"}
	args := []any{q.UserID}

	if q.HasFrom {
		conds = append(conds, "date >= ?")
		args = append(args, q.From.UTC().Format(sqliteTimeLayout))
	}
	if q.HasTo {
		conds = append(conds, "date <= ?")
		args = append(args, q.To.UTC().Format(sqliteTimeLayout))
	}

	query := `SELECT id, user_id, description, duration, date FROM exercises WHERE ` +
		strings.Join(conds, " AND ") + " ORDER BY date ASC"
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Exercise, 0, 64)
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date); err != nil {
			return nil, err
		}
		e.Date = e.Date.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
