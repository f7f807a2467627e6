package domain

import (
	"context"
	"time"
)

type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SalaryMin   *float64  `json:"salary_min"`
	SalaryMax   *float64  `json:"salary_max"`
	CompanyID   *int64    `json:"company_id"`
	JobTypeID   *int64    `json:"job_type_id"`
	CourseID    *int64    `json:"course_id"`
	SectorID    *int64    `json:"sector_id"`
	CountryID   *int64    `json:"country_id"`
	StateID     *int64    `json:"state_id"`
	CityID      *int64    `json:"city_id"`
	SkillIDs    []int64   `json:"skill_ids"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobWithRefs extends Job with resolved lookup names for list/detail views.
type JobWithRefs struct {
	Job
	CompanyName *string `json:"company_name"`
	SectorName  *string `json:"sector_name"`
	JobTypeName *string `json:"job_type_name"`
	CourseName  *string `json:"course_name"`
	CityName    *string `json:"city_name"`
}

type JobInput struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description string   `json:"description"`
	SalaryMin   *float64 `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax   *float64 `json:"salary_max" validate:"omitempty,gte=0"`
	CompanyID   *int64   `json:"company_id"`
	JobTypeID   *int64   `json:"job_type_id"`
	CourseID    *int64   `json:"course_id"`
	SectorID    *int64   `json:"sector_id"`
	CountryID   *int64   `json:"country_id"`
	StateID     *int64   `json:"state_id"`
	CityID      *int64   `json:"city_id"`
	SkillIDs    []int64  `json:"skill_ids"`
}

type JobRepository interface {
	// Create inserts the job row and its skill links in one transaction.
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*JobWithRefs, error)
	Fetch(ctx context.Context) ([]JobWithRefs, error)
	// Update rewrites the job row and replaces its skill links wholesale.
	Update(ctx context.Context, job *Job) error
	// SoftDelete flips the active flag; the row is preserved.
	SoftDelete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, input *JobInput) (*Job, error)
	GetJob(ctx context.Context, id int64) (*JobWithRefs, error)
	ListJobs(ctx context.Context) ([]JobWithRefs, error)
	UpdateJob(ctx context.Context, id int64, input *JobInput) (*Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
