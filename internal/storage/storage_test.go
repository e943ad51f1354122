package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.MigrateUp(context.Background()))
	return db
}

func TestMigrateUp(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	version, err := db.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)

	// Running again is a no-op.
	require.NoError(t, db.MigrateUp(ctx))
	version, err = db.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)
}

func TestStateEncoding(t *testing.T) {
	c := cubesim.NewCube().Do(cubesim.Commutator)
	s := EncodeState(c)
	assert.Equal(t, "210000220104111111133222222403333333040444444555555555", s)

	back, err := DecodeState(s)
	require.NoError(t, err)
	assert.True(t, back.Equal(c))
}

func TestDecodeStateRejectsBadInput(t *testing.T) {
	_, err := DecodeState("12x")
	assert.Error(t, err)

	bad := []byte(EncodeState(cubesim.NewCube()))
	bad[0] = '5'
	_, err = DecodeState(string(bad))
	assert.ErrorIs(t, err, cubesim.ErrInvariantViolation)
}

func TestScrambleRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewScrambleRepository(openTestDB(t))

	seed := uint64(42)
	s := cubesim.NewScrambler(cubesim.WithSeed(seed), cubesim.WithLength(20)).Scramble(cubesim.NewCube())

	id, err := repo.Create(ctx, s, &seed, "first")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.Sequence, got.Sequence)
	assert.Equal(t, s.Solution, got.Solution)
	assert.Equal(t, 20, got.Length)
	require.NotNil(t, got.Seed)
	assert.Equal(t, seed, *got.Seed)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "first", *got.Notes)

	c, err := got.Cube()
	require.NoError(t, err)
	assert.True(t, c.Equal(s.Cube))
	assert.True(t, c.Do(got.Solution).Equal(cubesim.NewCube()))

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestScrambleRepositoryListAndDelete(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	last, err := repo.GetLast(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	scrambler := cubesim.NewScrambler(cubesim.WithSeed(1), cubesim.WithLength(5))
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Create(ctx, scrambler.Scramble(cubesim.NewCube()), nil, "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	list, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Nil(t, list[0].Seed)
	assert.Nil(t, list[0].Notes)

	last, err = repo.GetLast(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, ids[2], last.ScrambleID)

	attempts := NewAttemptRepository(db)
	_, err = attempts.Create(ctx, ids[0], "UUU", false)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, ids[0]))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	remaining, err := attempts.GetByScramble(ctx, ids[0])
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestAttemptRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	s := cubesim.NewScrambler(cubesim.WithSeed(3), cubesim.WithLength(10)).Scramble(cubesim.NewCube())
	scrambleID, err := NewScrambleRepository(db).Create(ctx, s, nil, "")
	require.NoError(t, err)

	repo := NewAttemptRepository(db)
	_, err = repo.Create(ctx, scrambleID, "RRRUu", false)
	require.NoError(t, err)
	_, err = repo.Create(ctx, scrambleID, s.Solution, true)
	require.NoError(t, err)

	attempts, err := repo.GetByScramble(ctx, scrambleID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)

	assert.Equal(t, "RRRUu", attempts[0].Moves)
	assert.Equal(t, "r", attempts[0].Simplified)
	assert.False(t, attempts[0].Solved)
	assert.True(t, attempts[1].Solved)
	assert.Equal(t, s.Solution, attempts[1].Moves)

	recent, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, attempts[1].AttemptID, recent[0].AttemptID)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(sql.ErrNoRows))
	assert.True(t, isNotFound(fmt.Errorf("lookup: %w", sql.ErrNoRows)))
	assert.False(t, isNotFound(errors.New("disk full")))
	assert.False(t, isNotFound(nil))
}

func TestTransactionCommitsBothWrites(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	s := cubesim.NewScrambler(cubesim.WithSeed(8), cubesim.WithLength(6)).Scramble(cubesim.NewCube())

	var scrambleID string
	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		id, err := NewScrambleRepository(db).WithTx(tx).Create(ctx, s, nil, "")
		if err != nil {
			return err
		}
		scrambleID = id
		_, err = NewAttemptRepository(db).WithTx(tx).Create(ctx, id, s.Solution, true)
		return err
	})
	require.NoError(t, err)

	got, err := NewScrambleRepository(db).Get(ctx, scrambleID)
	require.NoError(t, err)
	require.NotNil(t, got)

	attempts, err := NewAttemptRepository(db).GetByScramble(ctx, scrambleID)
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	s := cubesim.NewScrambler(cubesim.WithSeed(8), cubesim.WithLength(6)).Scramble(cubesim.NewCube())

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		id, err := NewScrambleRepository(db).WithTx(tx).Create(ctx, s, nil, "")
		if err != nil {
			return err
		}
		// The foreign key rejects an unknown scramble, failing the second write.
		if _, err := NewAttemptRepository(db).WithTx(tx).Create(ctx, id+"-missing", "R", false); err != nil {
			return err
		}
		return nil
	})
	require.Error(t, err)

	count, err := NewScrambleRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, path, db.Path())
}
