package usecase

import (
	"context"
	"errors"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, validate: validate}
}

func (u *jobUsecase) CreateJob(ctx context.Context, input *domain.JobInput) (*domain.Job, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation(validation.Errors(err))
	}
	if input.SalaryMin != nil && input.SalaryMax != nil && *input.SalaryMin > *input.SalaryMax {
		return nil, apperror.BadRequest("salary_min cannot be greater than salary_max")
	}

	job := jobFromInput(input)
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.JobWithRefs, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.JobWithRefs, error) {
	jobs, err := u.jobRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, input *domain.JobInput) (*domain.Job, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation(validation.Errors(err))
	}
	if input.SalaryMin != nil && input.SalaryMax != nil && *input.SalaryMin > *input.SalaryMax {
		return nil, apperror.BadRequest("salary_min cannot be greater than salary_max")
	}

	job := jobFromInput(input)
	job.ID = id
	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	if err := u.jobRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func jobFromInput(input *domain.JobInput) *domain.Job {
	skillIDs := input.SkillIDs
	if skillIDs == nil {
		skillIDs = []int64{}
	}
	return &domain.Job{
		Title:       input.Title,
		Description: input.Description,
		SalaryMin:   input.SalaryMin,
		SalaryMax:   input.SalaryMax,
		CompanyID:   input.CompanyID,
		JobTypeID:   input.JobTypeID,
		CourseID:    input.CourseID,
		SectorID:    input.SectorID,
		CountryID:   input.CountryID,
		StateID:     input.StateID,
		CityID:      input.CityID,
		SkillIDs:    skillIDs,
		Active:      true,
	}
}
