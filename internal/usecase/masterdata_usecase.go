package usecase

import (
	"context"
	"errors"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type masterDataUsecase struct {
	repo     domain.MasterDataRepository
	validate *validator.Validate
}

func NewMasterDataUsecase(repo domain.MasterDataRepository, validate *validator.Validate) domain.MasterDataUsecase {
	return &masterDataUsecase{repo: repo, validate: validate}
}

func (u *masterDataUsecase) List(ctx context.Context, resource string) ([]domain.MasterRecord, error) {
	records, err := u.repo.List(ctx, resource)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return records, nil
}

func (u *masterDataUsecase) Create(ctx context.Context, resource string, input *domain.MasterRecordInput) (*domain.MasterRecord, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation(validation.Errors(err))
	}

	rec := &domain.MasterRecord{Name: input.Name, ParentID: input.ParentID}
	if err := u.repo.Create(ctx, resource, rec); err != nil {
		return nil, apperror.Internal(err)
	}
	return rec, nil
}

func (u *masterDataUsecase) Update(ctx context.Context, resource string, id int64, input *domain.MasterRecordInput) (*domain.MasterRecord, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation(validation.Errors(err))
	}

	rec := &domain.MasterRecord{ID: id, Name: input.Name, ParentID: input.ParentID}
	if err := u.repo.Update(ctx, resource, rec); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Record not found")
		}
		return nil, apperror.Internal(err)
	}
	return rec, nil
}

func (u *masterDataUsecase) Delete(ctx context.Context, resource string, id int64) error {
	if err := u.repo.SoftDelete(ctx, resource, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Record not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
