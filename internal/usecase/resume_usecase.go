package usecase

import (
	"context"
	"errors"
	"fmt"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/upload"
	"resume-builder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	validate   *validator.Validate
	uploadDir  string
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository, validate *validator.Validate, uploadDir string) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo: resumeRepo,
		validate:   validate,
		uploadDir:  uploadDir,
	}
}

// SubmitResume validates the submission, normalizes it into the aggregate form
// and persists it as one unit. Validation runs before any storage interaction;
// a failed submission leaves the database untouched.
func (u *resumeUsecase) SubmitResume(ctx context.Context, sub *domain.ResumeSubmission) (int64, error) {
	if err := u.validate.Struct(sub); err != nil {
		return 0, apperror.Validation(validation.Errors(err))
	}

	resume := normalize(sub)

	if sub.PersonalInfo.PhotoBase64 != "" {
		// Photo problems never sink the submission; the path just stays empty.
		if path, err := upload.SavePhoto(u.uploadDir, sub.PersonalInfo.PhotoBase64); err == nil {
			resume.PersonalInfo.PhotoPath = &path
		}
	}

	id, err := u.resumeRepo.CreateAggregate(ctx, resume)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return id, nil
}

func (u *resumeUsecase) GetResume(ctx context.Context, id int64) (*domain.Resume, error) {
	resume, err := u.resumeRepo.GetAggregate(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, apperror.Internal(err)
	}
	return resume, nil
}

func (u *resumeUsecase) ListResumes(ctx context.Context) ([]domain.Resume, error) {
	resumes, err := u.resumeRepo.ListAggregates(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return resumes, nil
}

// normalize converts the validated submission into the aggregate persisted by
// the repository: effective title, Draft status, missing collections as empty
// slices, and child entries with no identifying fields dropped.
func normalize(sub *domain.ResumeSubmission) *domain.Resume {
	title := sub.ResumeTitle
	if title == "" {
		title = fmt.Sprintf("%s's Resume", sub.PersonalInfo.FullName)
	}

	resume := &domain.Resume{
		Title:          title,
		Status:         domain.StatusDraft,
		PersonalInfo:   *sub.PersonalInfo,
		WorkExperience: []domain.WorkExperience{},
		Education:      []domain.Education{},
		Projects:       []domain.Project{},
		Skills:         sub.Skills,
		Certifications: sub.Certifications,
		Interests:      sub.Interests,
	}
	resume.PersonalInfo.PhotoBase64 = ""

	// Blank-entry filter. The criteria deliberately differ per entity type:
	// work experience needs a company or role, education a college or course,
	// a project its title. Skills, certifications and interests are never
	// filtered since validation already requires their fields.
	for _, w := range sub.WorkExperience {
		if hasText(w.CompanyName) || hasText(w.JobRole) {
			resume.WorkExperience = append(resume.WorkExperience, w)
		}
	}
	for _, e := range sub.Education {
		if hasText(e.InstitutionName) || hasText(e.CourseName) {
			resume.Education = append(resume.Education, e)
		}
	}
	for _, p := range sub.Projects {
		if hasText(p.ProjectTitle) {
			resume.Projects = append(resume.Projects, p)
		}
	}

	if resume.Skills == nil {
		resume.Skills = []domain.Skill{}
	}
	if resume.Certifications == nil {
		resume.Certifications = []domain.Certification{}
	}
	if resume.Interests == nil {
		resume.Interests = []domain.Interest{}
	}
	return resume
}

func hasText(s *string) bool {
	return s != nil && *s != ""
}
