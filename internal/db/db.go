// Package db provides PostgreSQL archiving for batch screening runs.
// The in-memory store stays authoritative during a session; the archive
// is an append-only audit trail of what each run produced.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-screener/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SaveBatchRun archives a completed batch run: the summary row plus one
// candidate row per ranked candidate at the time of the run.
func (db *DB) SaveBatchRun(ctx context.Context, result types.BatchResult, jdText string, candidates []types.CandidateRecord) error {
	failures, err := json.Marshal(result.FailedCandidates)
	if err != nil {
		return fmt.Errorf("failed to marshal failures: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO batch_runs (id, jd_text, success_count, fail_count, failures)
		 VALUES ($1, $2, $3, $4, $5)`,
		result.RunID, jdText, result.SuccessCount, result.FailCount, failures,
	)
	if err != nil {
		return fmt.Errorf("failed to save batch run: %w", err)
	}

	for _, c := range candidates {
		breakdown, err := json.Marshal(c.Breakdown)
		if err != nil {
			return fmt.Errorf("failed to marshal breakdown for candidate %d: %w", c.ID, err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO batch_run_candidates (run_id, candidate_id, name, email, rank, overall_score, breakdown)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			result.RunID, c.ID, c.Name, c.Email, c.Rank, c.Breakdown.OverallScore, breakdown,
		)
		if err != nil {
			return fmt.Errorf("failed to save candidate %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit batch run: %w", err)
	}
	return nil
}

// GetBatchRun retrieves an archived run summary by id. A missing run
// returns nil without error.
func (db *DB) GetBatchRun(ctx context.Context, runID uuid.UUID) (*types.BatchResult, error) {
	var (
		result   types.BatchResult
		failures []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, success_count, fail_count, failures FROM batch_runs WHERE id = $1`,
		runID,
	).Scan(&result.RunID, &result.SuccessCount, &result.FailCount, &failures)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get batch run %s: %w", runID, err)
	}

	if err := json.Unmarshal(failures, &result.FailedCandidates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal failures for run %s: %w", runID, err)
	}
	return &result, nil
}

// ListBatchRuns returns the ids of archived runs, newest first.
func (db *DB) ListBatchRuns(ctx context.Context, limit int) ([]uuid.UUID, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id FROM batch_runs ORDER BY created_at DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch runs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan batch run id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
