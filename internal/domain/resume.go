package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Resume statuses
const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
)

// PersonalInfo is the single profile record attached to a resume.
// PhotoBase64 is input-only: it is decoded and stored on disk before
// persistence and never written to the database.
type PersonalInfo struct {
	FullName        string  `json:"full_name" validate:"required,min=2,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	PhoneNumber     string  `json:"phone_number" validate:"required,min=10,max=15"`
	DateOfBirth     string  `json:"date_of_birth" validate:"required"`
	Location        string  `json:"location" validate:"required,max=100"`
	PhotoPath       *string `json:"photo_path"`
	LinkedInURL     *string `json:"linkedin_url"`
	GitHubURL       *string `json:"github_url"`
	CareerObjective string  `json:"career_objective" validate:"required"`
	PhotoBase64     string  `json:"photo_base64,omitempty" validate:"-"`
}

type WorkExperience struct {
	CompanyName     *string `json:"company_name"`
	JobRole         *string `json:"job_role"`
	DateOfJoin      *string `json:"date_of_join"`
	LastWorkingDate *string `json:"last_working_date"`
	Experience      *string `json:"experience"`
}

type Education struct {
	InstitutionName  *string `json:"institution_name"`
	UniversityName   *string `json:"university_name"`
	CourseName       *string `json:"course_name"`
	YearOfCompletion *int    `json:"year_of_completion"`
	CGPA             *string `json:"cgpa"`
}

type Project struct {
	ProjectTitle *string `json:"project_title"`
	ProjectLink  *string `json:"project_link"`
	Organization *string `json:"organization"`
	Description  *string `json:"description"`
}

type Skill struct {
	SkillType string `json:"skill_type" validate:"required"`
	SkillName string `json:"skill_name" validate:"required"`
}

type Certification struct {
	CertificationName string `json:"certification_name" validate:"required"`
}

type Interest struct {
	InterestName string `json:"interest_name" validate:"required"`
}

// ResumeSubmission is the client payload for POST /api/resume. Collections are
// optional; absence normalizes to an empty slice. Signature is an
// acknowledgement token, required but never verified cryptographically.
type ResumeSubmission struct {
	PersonalInfo   *PersonalInfo    `json:"personal_info" validate:"required"`
	WorkExperience []WorkExperience `json:"work_experience" validate:"omitempty,dive"`
	Education      []Education      `json:"education" validate:"omitempty,dive"`
	Projects       []Project        `json:"projects" validate:"omitempty,dive"`
	Skills         []Skill          `json:"skills" validate:"omitempty,dive"`
	Certifications []Certification  `json:"certifications" validate:"omitempty,dive"`
	Interests      []Interest       `json:"interests" validate:"omitempty,dive"`
	ResumeTitle    string           `json:"resume_title"`
	Signature      string           `json:"signature" validate:"required"`
}

// Resume is the full aggregate: one parent row plus up to one PersonalInfo and
// six child collections, treated as a single unit of consistency.
type Resume struct {
	ID             int64            `json:"resume_id"`
	Title          string           `json:"resume_title"`
	Status         string           `json:"status"`
	VisitorCount   int64            `json:"visitor_count"`
	DownloadCount  int64            `json:"download_count"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	WorkExperience []WorkExperience `json:"work_experience"`
	Education      []Education      `json:"education"`
	Projects       []Project        `json:"projects"`
	Skills         []Skill          `json:"skills"`
	Certifications []Certification  `json:"certifications"`
	Interests      []Interest       `json:"interests"`
}

type ResumeRepository interface {
	// CreateAggregate persists the whole resume in one transaction: parent row
	// first to obtain the generated id, then personal info and child rows.
	// Any failure rolls back every insert of the call.
	CreateAggregate(ctx context.Context, resume *Resume) (int64, error)
	GetAggregate(ctx context.Context, id int64) (*Resume, error)
	ListAggregates(ctx context.Context) ([]Resume, error)
}

type ResumeUsecase interface {
	SubmitResume(ctx context.Context, sub *ResumeSubmission) (int64, error)
	GetResume(ctx context.Context, id int64) (*Resume, error)
	ListResumes(ctx context.Context) ([]Resume, error)
}
