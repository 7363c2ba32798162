package store

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
)

// resultRepo implements ResultRepo with ent's SQL builders.
type resultRepo struct {
	drv dialect.Driver
}

var resultColumns = []string{colID, colAttemptID, colStartedAt, colCompletedAt, colAnswered, colData}

// builder returns a SQL builder for the store's dialect.
func builder() *sql.DialectBuilder {
	return sql.Dialect(dialect.SQLite)
}

// newest selects result columns ordered newest first.
func newest(columns ...string) *sql.Selector {
	b := builder()
	return b.Select(columns...).
		From(b.Table(resultsTable)).
		OrderBy(sql.Desc(colCompletedAt), sql.Desc(colID))
}

func (r *resultRepo) Save(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec.Results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	query, args := builder().Insert(resultsTable).
		Columns(colAttemptID, colStartedAt, colCompletedAt, colAnswered,
			colPsychometric, colTechnical, colWiscar, colOverall, colRecommendation, colData).
		Values(
			rec.AttemptID,
			rec.StartedAt.UnixMilli(),
			rec.CompletedAt.UnixMilli(),
			rec.Answered,
			rec.Results.Psychometric,
			rec.Results.Technical,
			rec.Results.Wiscar,
			rec.Results.Overall,
			string(rec.Results.Recommendation),
			string(data),
		).Query()

	var res stdsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	rec.ID = id
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]Record, error) {
	sel := newest(resultColumns...)
	if limit > 0 {
		sel.Limit(limit)
	}
	out, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	return out, nil
}

func (r *resultRepo) Latest(ctx context.Context) (*Record, error) {
	return r.one(ctx, newest(resultColumns...).Limit(1))
}

func (r *resultRepo) Get(ctx context.Context, attemptID string) (*Record, error) {
	sel := builder().Select(resultColumns...).
		From(builder().Table(resultsTable)).
		Where(sql.EQ(colAttemptID, attemptID))
	return r.one(ctx, sel)
}

func (r *resultRepo) Count(ctx context.Context) (int, error) {
	b := builder()
	query, args := b.Select(sql.Count("*")).From(b.Table(resultsTable)).Query()

	var rows sql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	defer rows.Close()

	n, err := sql.ScanInt(rows)
	if err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}

func (r *resultRepo) Prune(ctx context.Context, keep int) error {
	kept := newest(colID).Limit(max(keep, 0))
	query, args := builder().Delete(resultsTable).
		Where(sql.NotIn(colID, kept)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune results: %w", err)
	}
	return nil
}

// query runs sel and decodes every row.
func (r *resultRepo) query(ctx context.Context, sel *sql.Selector) ([]Record, error) {
	query, args := sel.Query()

	var rows sql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// one runs sel and returns its first row, or ErrNotFound.
func (r *resultRepo) one(ctx context.Context, sel *sql.Selector) (*Record, error) {
	out, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query result: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*Record, error) {
	var (
		rec                Record
		started, completed int64
		data               string
	)
	if err := s.Scan(&rec.ID, &rec.AttemptID, &started, &completed, &rec.Answered, &data); err != nil {
		return nil, fmt.Errorf("scan result: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &rec.Results); err != nil {
		return nil, fmt.Errorf("decode result %s: %w", rec.AttemptID, err)
	}
	rec.StartedAt = time.UnixMilli(started).UTC()
	rec.CompletedAt = time.UnixMilli(completed).UTC()
	return &rec, nil
}
