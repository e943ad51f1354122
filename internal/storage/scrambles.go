package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubesim"
)

// ScrambleRecord represents a saved scramble in the database.
type ScrambleRecord struct {
	ScrambleID string
	CreatedAt  time.Time
	Length     int
	Seed       *uint64
	Sequence   string
	Solution   string
	State      string // 54 color ordinals, one digit each
	Notes      *string
}

// Cube decodes the stored state.
func (r ScrambleRecord) Cube() (cubesim.Cube, error) {
	return DecodeState(r.State)
}

// EncodeState writes the cube's indices as a string of 54 digits.
func EncodeState(c cubesim.Cube) string {
	idx := c.Indices()
	buf := make([]byte, len(idx))
	for i, v := range idx {
		buf[i] = byte('0' + v)
	}
	return string(buf)
}

// DecodeState parses a string produced by EncodeState. The cube invariant is
// checked, so a corrupted row returns an error wrapping
// cubesim.ErrInvariantViolation.
func DecodeState(s string) (cubesim.Cube, error) {
	s = strings.TrimSpace(s)
	idx := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return cubesim.Cube{}, fmt.Errorf("invalid state character %q at %d", s[i], i)
		}
		idx[i] = int(s[i] - '0')
	}
	return cubesim.FromIndices(idx)
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db querier
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// WithTx returns a repository that runs its queries in tx.
func (r *ScrambleRepository) WithTx(tx *sql.Tx) *ScrambleRepository {
	return &ScrambleRepository{db: tx}
}

// Create stores a scramble and returns its ID. seed may be nil when the
// scramble was not generated from a fixed seed.
func (r *ScrambleRepository) Create(ctx context.Context, s cubesim.Scramble, seed *uint64, notes string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	var seedVal *int64
	if seed != nil {
		v := int64(*seed)
		seedVal = &v
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO scrambles (scramble_id, created_at, length, seed, sequence_text, solution_text, state, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(timeLayout), len(s.Sequence), seedVal, s.Sequence, s.Solution, EncodeState(s.Cube), notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const scrambleColumns = `scramble_id, created_at, length, seed, sequence_text, solution_text, state, notes`

// isNotFound reports whether err means a single-row lookup found nothing.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScramble(row rowScanner) (ScrambleRecord, error) {
	var s ScrambleRecord
	var createdAtStr string
	var seed sql.NullInt64

	err := row.Scan(
		&s.ScrambleID, &createdAtStr, &s.Length, &seed,
		&s.Sequence, &s.Solution, &s.State, &s.Notes,
	)
	if err != nil {
		return ScrambleRecord{}, err
	}

	s.CreatedAt, _ = time.Parse(timeLayout, createdAtStr)
	if seed.Valid {
		v := uint64(seed.Int64)
		s.Seed = &v
	}

	return s, nil
}

// Get retrieves a scramble by ID. It returns nil if no such scramble exists.
func (r *ScrambleRepository) Get(ctx context.Context, scrambleID string) (*ScrambleRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+scrambleColumns+`
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID)

	s, err := scanScramble(row)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	return &s, nil
}

// GetLast retrieves the most recent scramble.
func (r *ScrambleRepository) GetLast(ctx context.Context) (*ScrambleRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+scrambleColumns+`
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`)

	s, err := scanScramble(row)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scramble: %w", err)
	}

	return &s, nil
}

// List retrieves recent scrambles, newest first.
func (r *ScrambleRepository) List(ctx context.Context, limit int) ([]ScrambleRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+scrambleColumns+`
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []ScrambleRecord
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scrambles: %w", err)
	}

	return scrambles, nil
}

// Count returns the number of saved scrambles.
func (r *ScrambleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM scrambles").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scrambles: %w", err)
	}
	return count, nil
}

// Delete deletes a scramble and its attempts (cascading).
func (r *ScrambleRepository) Delete(ctx context.Context, scrambleID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}
