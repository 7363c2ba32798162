package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/response"
	"github.com/abhisek/careerfit/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(attemptID string, completed time.Time, overall int) *Record {
	r := scoring.Calculate(catalog.Default(), []response.Response{
		{QuestionID: "psych_1", Answer: response.Rating(4)},
		{QuestionID: "tech_1", Answer: response.Choice("16 trucks")},
	})
	r.Overall = overall
	r.Recommendation = scoring.Recommend(overall)
	return &Record{
		AttemptID:   attemptID,
		StartedAt:   completed.Add(-25 * time.Minute),
		CompletedAt: completed,
		Answered:    2,
		Results:     r,
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked with a file-based DB below.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDBUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "careerfit.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='results'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "results" {
		t.Errorf("table name = %q, want 'results'", name)
	}
}

func TestMigrationCreatesCompletedAtIndex(t *testing.T) {
	s := openTestStore(t)

	var n int
	require.NoError(t, s.DB().QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name='results_completed_at'",
	).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, migrate(context.Background(), s.drv))
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "careerfit.db")
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.ResultRepo().Save(ctx, testRecord("a-1", now, 80)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.ResultRepo().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestResultSaveAndLatest(t *testing.T) {
	repo := openTestStore(t).ResultRepo()
	ctx := context.Background()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	now := time.Now().UTC().Truncate(time.Millisecond)
	rec := testRecord("attempt-1", now, 77)
	require.NoError(t, repo.Save(ctx, rec))
	assert.NotZero(t, rec.ID)

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "attempt-1", got.AttemptID)
	assert.Equal(t, now, got.CompletedAt)
	assert.Equal(t, 25*time.Minute, got.Duration())
	assert.Equal(t, 2, got.Answered)
	assert.Equal(t, rec.Results, got.Results)
}

func TestResultSave_DuplicateAttemptRejected(t *testing.T) {
	repo := openTestStore(t).ResultRepo()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Save(ctx, testRecord("dup", now, 50)))
	assert.Error(t, repo.Save(ctx, testRecord("dup", now, 60)))
}

func TestResultRecent_NewestFirst(t *testing.T) {
	repo := openTestStore(t).ResultRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i := 0; i < 4; i++ {
		rec := testRecord(fmt.Sprintf("a-%d", i), base.Add(time.Duration(i)*time.Hour), 50+i*10)
		require.NoError(t, repo.Save(ctx, rec))
	}

	recent, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "a-3", recent[0].AttemptID)
	assert.Equal(t, "a-1", recent[2].AttemptID)
	assert.Equal(t, scoring.RecommendYes, recent[0].Results.Recommendation)

	all, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestResultGet(t *testing.T) {
	repo := openTestStore(t).ResultRepo()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testRecord("known", time.Now(), 65)))

	got, err := repo.Get(ctx, "known")
	require.NoError(t, err)
	assert.Equal(t, 65, got.Results.Overall)

	_, err = repo.Get(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResultPrune(t *testing.T) {
	repo := openTestStore(t).ResultRepo()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Save(ctx, testRecord(fmt.Sprintf("p-%d", i), base.Add(time.Duration(i)*time.Minute), 40)))
	}

	require.NoError(t, repo.Prune(ctx, 5))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p-6", latest.AttemptID)

	// Fewer than keep is a no-op.
	require.NoError(t, repo.Prune(ctx, 10))
	n, _ = repo.Count(ctx)
	assert.Equal(t, 5, n)

	require.NoError(t, repo.Prune(ctx, 0))
	n, _ = repo.Count(ctx)
	assert.Equal(t, 0, n)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("CAREERFIT_DB", filepath.Join(dir, "env", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "env", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "env"))

	t.Setenv("CAREERFIT_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "careerfit", "careerfit.db"), p)
	assert.DirExists(t, filepath.Join(dir, "careerfit"))
}
