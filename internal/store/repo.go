package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/careerfit/internal/scoring"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Record is one completed attempt as kept in history. Responses are not
// stored, only what was derived from them.
type Record struct {
	ID          int64
	AttemptID   string
	StartedAt   time.Time
	CompletedAt time.Time
	Answered    int
	Results     scoring.Results
}

// Duration is how long the attempt took.
func (r *Record) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}

// ResultRepo persists completed results.
type ResultRepo interface {
	// Save appends a record and fills in its ID.
	Save(ctx context.Context, rec *Record) error

	// Recent returns up to limit records, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]Record, error)

	// Latest returns the newest record, or ErrNotFound.
	Latest(ctx context.Context) (*Record, error)

	// Get returns the record for an attempt, or ErrNotFound.
	Get(ctx context.Context, attemptID string) (*Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Prune deletes all but the keep most recent records.
	Prune(ctx context.Context, keep int) error
}
