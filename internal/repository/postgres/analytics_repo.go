package postgres

import (
	"context"
	"errors"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type analyticsRepo struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) domain.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

// Counter bumps run as a single in-place UPDATE so concurrent requests cannot
// lose increments; the row lock serializes them.

func (r *analyticsRepo) IncrementVisitor(ctx context.Context) (*domain.CounterResult, error) {
	var res domain.CounterResult
	err := r.db.QueryRow(ctx, `
		UPDATE resumes
		SET visitor_count = visitor_count + 1, updated_at = NOW()
		WHERE id = (SELECT id FROM resumes ORDER BY updated_at DESC LIMIT 1)
		RETURNING id, visitor_count`,
	).Scan(&res.ResumeID, &res.Count)

	if errors.Is(err, pgx.ErrNoRows) {
		// No resume yet: synthesize a placeholder carrying the first visit.
		err = r.db.QueryRow(ctx, `
			INSERT INTO resumes (title, status, visitor_count, download_count, created_at, updated_at)
			VALUES ('Untitled Resume', $1, 1, 0, NOW(), NOW())
			RETURNING id, visitor_count`, domain.StatusDraft,
		).Scan(&res.ResumeID, &res.Count)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *analyticsRepo) IncrementDownload(ctx context.Context, resumeID int64) (*domain.CounterResult, error) {
	var res domain.CounterResult
	var err error

	if resumeID > 0 {
		err = r.db.QueryRow(ctx, `
			UPDATE resumes
			SET download_count = download_count + 1, updated_at = NOW()
			WHERE id = $1
			RETURNING id, download_count`, resumeID,
		).Scan(&res.ResumeID, &res.Count)
	} else {
		err = r.db.QueryRow(ctx, `
			UPDATE resumes
			SET download_count = download_count + 1, updated_at = NOW()
			WHERE id = (SELECT id FROM resumes ORDER BY updated_at DESC LIMIT 1)
			RETURNING id, download_count`,
		).Scan(&res.ResumeID, &res.Count)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *analyticsRepo) Totals(ctx context.Context) (*domain.AnalyticsTotals, error) {
	var totals domain.AnalyticsTotals
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(visitor_count), 0),
		       COALESCE(SUM(download_count), 0),
		       COUNT(*)
		FROM resumes`,
	).Scan(&totals.TotalVisitors, &totals.TotalDownloads, &totals.ResumeCount)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
