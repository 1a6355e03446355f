package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Analysis is one persisted analysis record. Result carries the
// analysis verbatim as it was returned to the caller.
type Analysis struct {
	ID          uuid.UUID       `json:"id"`
	ContentHash string          `json:"content_hash"`
	Requester   string          `json:"requester"`
	JDChars     int             `json:"jd_chars"`
	Score       int             `json:"score"`
	Result      json.RawMessage `json:"result"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ContentHash derives the cache key for one requester/job-description
// pair. Identical postings from different requesters cache separately.
func ContentHash(requester, jdText string) string {
	sum := sha256.Sum256([]byte(requester + "\n" + jdText))
	return hex.EncodeToString(sum[:])
}

// SaveAnalysis stores an analysis result, replacing any previous result
// for the same content hash.
func (db *DB) SaveAnalysis(ctx context.Context, a Analysis) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analyses (content_hash, requester, jd_chars, score, result)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (content_hash) DO UPDATE
		 SET requester = $2, jd_chars = $3, score = $4, result = $5, created_at = NOW()
		 RETURNING id`,
		a.ContentHash, a.Requester, a.JDChars, a.Score, []byte(a.Result),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysisByHash retrieves a cached analysis by content hash.
// Returns nil, nil when no cached result exists.
func (db *DB) GetAnalysisByHash(ctx context.Context, contentHash string) (*Analysis, error) {
	return db.getAnalysis(ctx,
		`SELECT id, content_hash, requester, jd_chars, score, result, created_at
		 FROM analyses WHERE content_hash = $1`, contentHash)
}

// GetAnalysis retrieves an analysis by ID. Returns nil, nil when not found.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	return db.getAnalysis(ctx,
		`SELECT id, content_hash, requester, jd_chars, score, result, created_at
		 FROM analyses WHERE id = $1`, id)
}

func (db *DB) getAnalysis(ctx context.Context, query string, arg any) (*Analysis, error) {
	var a Analysis
	var result []byte
	err := db.pool.QueryRow(ctx, query, arg).
		Scan(&a.ID, &a.ContentHash, &a.Requester, &a.JDChars, &a.Score, &result, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	a.Result = result
	return &a, nil
}

// AnalysisSummary is a lightweight view of an analysis for listing.
type AnalysisSummary struct {
	ID        uuid.UUID `json:"id"`
	Requester string    `json:"requester"`
	JDChars   int       `json:"jd_chars"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalysisFilters holds optional filters for listing analyses.
type AnalysisFilters struct {
	Requester string
	MinScore  int
	Limit     int
}

// ListAnalyses retrieves recent analyses with optional filters.
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, requester, jd_chars, score, created_at
		FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Requester != "" {
		query += fmt.Sprintf(" AND requester = $%d", argNum)
		args = append(args, filters.Requester)
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisSummary
	for rows.Next() {
		var a AnalysisSummary
		if err := rows.Scan(&a.ID, &a.Requester, &a.JDChars, &a.Score, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// DeleteAnalysis removes one analysis record.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}
