package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubesim"
)

// Attempt is one recorded try at undoing a saved scramble.
type Attempt struct {
	AttemptID  int64
	ScrambleID string
	CreatedAt  time.Time
	Moves      string
	Simplified string
	Solved     bool
}

// AttemptRepository provides CRUD operations for attempts.
type AttemptRepository struct {
	db querier
}

// NewAttemptRepository creates a new attempt repository.
func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// WithTx returns a repository that runs its queries in tx.
func (r *AttemptRepository) WithTx(tx *sql.Tx) *AttemptRepository {
	return &AttemptRepository{db: tx}
}

// Create records the moves played against a scramble. The simplified form is
// computed with cubesim.Simplify before storing.
func (r *AttemptRepository) Create(ctx context.Context, scrambleID, moves string, solved bool) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO attempts (scramble_id, created_at, moves_text, simplified, solved)
		VALUES (?, ?, ?, ?, ?)
	`, scrambleID, time.Now().UTC().Format(timeLayout), moves, cubesim.Simplify(moves), solved)

	if err != nil {
		return 0, fmt.Errorf("failed to create attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get attempt ID: %w", err)
	}

	return id, nil
}

// GetByScramble retrieves all attempts for a scramble in creation order.
func (r *AttemptRepository) GetByScramble(ctx context.Context, scrambleID string) ([]Attempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT attempt_id, scramble_id, created_at, moves_text, simplified, solved
		FROM attempts
		WHERE scramble_id = ?
		ORDER BY attempt_id
	`, scrambleID)

	if err != nil {
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}

	return scanAttempts(rows)
}

// List retrieves the most recent attempts across all scrambles, newest first.
func (r *AttemptRepository) List(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT attempt_id, scramble_id, created_at, moves_text, simplified, solved
		FROM attempts
		ORDER BY attempt_id DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	return scanAttempts(rows)
}

func scanAttempts(rows *sql.Rows) ([]Attempt, error) {
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var createdAtStr string
		err := rows.Scan(&a.AttemptID, &a.ScrambleID, &createdAtStr, &a.Moves, &a.Simplified, &a.Solved)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		a.CreatedAt, _ = time.Parse(timeLayout, createdAtStr)
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attempts: %w", err)
	}

	return attempts, nil
}
