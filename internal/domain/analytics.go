package domain

import "context"

// CounterResult reports which resume a tracked event landed on and the counter
// value after the increment.
type CounterResult struct {
	ResumeID int64 `json:"resume_id"`
	Count    int64 `json:"count"`
}

type AnalyticsTotals struct {
	TotalVisitors  int64 `json:"total_visitors"`
	TotalDownloads int64 `json:"total_downloads"`
	ResumeCount    int64 `json:"resume_count"`
}

type AnalyticsRepository interface {
	// IncrementVisitor bumps the visitor counter of the most recently updated
	// resume by exactly 1, atomically in the database. If no resume exists a
	// placeholder resume is created with its counter at 1.
	IncrementVisitor(ctx context.Context) (*CounterResult, error)
	// IncrementDownload bumps the download counter of the given resume, or of
	// the most recently updated resume when id is 0. Returns ErrNotFound when
	// the referenced resume does not exist.
	IncrementDownload(ctx context.Context, resumeID int64) (*CounterResult, error)
	Totals(ctx context.Context) (*AnalyticsTotals, error)
}

type AnalyticsUsecase interface {
	TrackVisitor(ctx context.Context) (*CounterResult, error)
	TrackDownload(ctx context.Context, resumeID int64) (*CounterResult, error)
	GetTotals(ctx context.Context) (*AnalyticsTotals, error)
}
