package usecase

import (
	"context"
	"errors"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
)

type analyticsUsecase struct {
	repo domain.AnalyticsRepository
}

func NewAnalyticsUsecase(repo domain.AnalyticsRepository) domain.AnalyticsUsecase {
	return &analyticsUsecase{repo: repo}
}

func (u *analyticsUsecase) TrackVisitor(ctx context.Context) (*domain.CounterResult, error) {
	res, err := u.repo.IncrementVisitor(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return res, nil
}

func (u *analyticsUsecase) TrackDownload(ctx context.Context, resumeID int64) (*domain.CounterResult, error) {
	res, err := u.repo.IncrementDownload(ctx, resumeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}
	return res, nil
}

func (u *analyticsUsecase) GetTotals(ctx context.Context) (*domain.AnalyticsTotals, error) {
	totals, err := u.repo.Totals(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return totals, nil
}
