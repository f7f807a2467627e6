package usecase

import (
	"context"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
)

// SystemUsecase backs the health and schema-introspection endpoints.
type SystemUsecase interface {
	Health(ctx context.Context) error
	GetSchema(ctx context.Context) (*domain.SchemaInfo, error)
}

type systemUsecase struct {
	schemaRepo domain.SchemaRepository
}

func NewSystemUsecase(schemaRepo domain.SchemaRepository) SystemUsecase {
	return &systemUsecase{schemaRepo: schemaRepo}
}

func (u *systemUsecase) Health(ctx context.Context) error {
	if err := u.schemaRepo.Ping(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *systemUsecase) GetSchema(ctx context.Context) (*domain.SchemaInfo, error) {
	info, err := u.schemaRepo.Inspect(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return info, nil
}
