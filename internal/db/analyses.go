package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const defaultAnalysisListLimit = 50

// SaveAnalysis stores an analysis result document for a user and returns the
// new row's ID. result is marshaled to JSONB.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, jobDescription string, atsScore float64, result any) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_analyses (user_id, job_description, ats_score, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, jobDescription, atsScore, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID, scoped to the owning user.
// Returns nil when no matching row exists.
func (db *DB) GetAnalysis(ctx context.Context, userID, analysisID uuid.UUID) (*Analysis, error) {
	var analysis Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_description, ats_score, result, created_at
		 FROM resume_analyses WHERE id = $1 AND user_id = $2`,
		analysisID, userID,
	).Scan(&analysis.ID, &analysis.UserID, &analysis.JobDescription, &analysis.ATSScore, &analysis.Result, &analysis.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &analysis, nil
}

// ListAnalyses retrieves a user's stored analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = defaultAnalysisListLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_description, ats_score, result, created_at
		 FROM resume_analyses WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var analysis Analysis
		if err := rows.Scan(&analysis.ID, &analysis.UserID, &analysis.JobDescription,
			&analysis.ATSScore, &analysis.Result, &analysis.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	return analyses, rows.Err()
}
