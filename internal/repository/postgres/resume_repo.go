package postgres

import (
	"context"
	"errors"
	"fmt"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

// CreateAggregate fans the resume out across the seven tables in a single
// transaction. The parent row goes first so its generated id can key every
// child insert; any failure rolls the whole call back.
func (r *resumeRepo) CreateAggregate(ctx context.Context, resume *domain.Resume) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var resumeID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO resumes (title, status, visitor_count, download_count, created_at, updated_at)
		VALUES ($1, $2, 0, 0, NOW(), NOW())
		RETURNING id`,
		resume.Title, resume.Status,
	).Scan(&resumeID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert resume: %w", err)
	}

	p := resume.PersonalInfo
	_, err = tx.Exec(ctx, `
		INSERT INTO personal_information
			(resume_id, full_name, email, phone_number, date_of_birth, location,
			 photo_path, linkedin_url, github_url, career_objective, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())`,
		resumeID, p.FullName, p.Email, p.PhoneNumber, p.DateOfBirth, p.Location,
		p.PhotoPath, p.LinkedInURL, p.GitHubURL, p.CareerObjective,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert personal info: %w", err)
	}

	for _, w := range resume.WorkExperience {
		_, err = tx.Exec(ctx, `
			INSERT INTO work_experience
				(resume_id, company_name, job_role, date_of_join, last_working_date, experience, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
			resumeID, w.CompanyName, w.JobRole, w.DateOfJoin, w.LastWorkingDate, w.Experience,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert work experience: %w", err)
		}
	}

	for _, e := range resume.Education {
		_, err = tx.Exec(ctx, `
			INSERT INTO education
				(resume_id, college, university, course, year, cgpa, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
			resumeID, e.InstitutionName, e.UniversityName, e.CourseName, e.YearOfCompletion, e.CGPA,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert education: %w", err)
		}
	}

	for _, pr := range resume.Projects {
		_, err = tx.Exec(ctx, `
			INSERT INTO projects
				(resume_id, project_title, project_link, organization, description, created_at)
			VALUES ($1, $2, $3, $4, $5, NOW())`,
			resumeID, pr.ProjectTitle, pr.ProjectLink, pr.Organization, pr.Description,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert project: %w", err)
		}
	}

	for _, s := range resume.Skills {
		_, err = tx.Exec(ctx, `
			INSERT INTO skills (resume_id, skill_type, skill_name, created_at)
			VALUES ($1, $2, $3, NOW())`,
			resumeID, s.SkillType, s.SkillName,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert skill: %w", err)
		}
	}

	for _, c := range resume.Certifications {
		_, err = tx.Exec(ctx, `
			INSERT INTO certifications (resume_id, certification_name, created_at)
			VALUES ($1, $2, NOW())`,
			resumeID, c.CertificationName,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert certification: %w", err)
		}
	}

	for _, i := range resume.Interests {
		_, err = tx.Exec(ctx, `
			INSERT INTO interests (resume_id, interest_name, created_at)
			VALUES ($1, $2, NOW())`,
			resumeID, i.InterestName,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert interest: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return resumeID, nil
}

func (r *resumeRepo) GetAggregate(ctx context.Context, id int64) (*domain.Resume, error) {
	var resume domain.Resume
	err := r.db.QueryRow(ctx, `
		SELECT id, title, status, visitor_count, download_count, created_at, updated_at
		FROM resumes WHERE id = $1`, id,
	).Scan(
		&resume.ID, &resume.Title, &resume.Status,
		&resume.VisitorCount, &resume.DownloadCount,
		&resume.CreatedAt, &resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := r.fetchChildren(ctx, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) ListAggregates(ctx context.Context) ([]domain.Resume, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, status, visitor_count, download_count, created_at, updated_at
		FROM resumes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumes := []domain.Resume{}
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(
			&resume.ID, &resume.Title, &resume.Status,
			&resume.VisitorCount, &resume.DownloadCount,
			&resume.CreatedAt, &resume.UpdatedAt,
		); err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One round of child fetches per resume. O(resumes x child tables) queries,
	// acceptable at single-tenant scale; a batched join is the upgrade path.
	for i := range resumes {
		if err := r.fetchChildren(ctx, &resumes[i]); err != nil {
			return nil, err
		}
	}
	return resumes, nil
}

// fetchChildren folds the six child tables plus personal info back into the
// aggregate, renaming storage columns (college, course, ...) to the external
// vocabulary (institution_name, course_name, ...).
func (r *resumeRepo) fetchChildren(ctx context.Context, resume *domain.Resume) error {
	err := r.db.QueryRow(ctx, `
		SELECT full_name, email, phone_number, date_of_birth, location,
		       photo_path, linkedin_url, github_url, career_objective
		FROM personal_information WHERE resume_id = $1`, resume.ID,
	).Scan(
		&resume.PersonalInfo.FullName, &resume.PersonalInfo.Email,
		&resume.PersonalInfo.PhoneNumber, &resume.PersonalInfo.DateOfBirth,
		&resume.PersonalInfo.Location, &resume.PersonalInfo.PhotoPath,
		&resume.PersonalInfo.LinkedInURL, &resume.PersonalInfo.GitHubURL,
		&resume.PersonalInfo.CareerObjective,
	)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to fetch personal info: %w", err)
		}
		// Resumes synthesized by the visitor counter have no personal info;
		// readers get a placeholder record instead of an error.
		resume.PersonalInfo = domain.PersonalInfo{
			FullName: "Unknown",
			Email:    "No email",
			Location: "N/A",
		}
	}

	resume.WorkExperience = []domain.WorkExperience{}
	rows, err := r.db.Query(ctx, `
		SELECT company_name, job_role, date_of_join, last_working_date, experience
		FROM work_experience WHERE resume_id = $1 ORDER BY id`, resume.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch work experience: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var w domain.WorkExperience
		if err := rows.Scan(&w.CompanyName, &w.JobRole, &w.DateOfJoin, &w.LastWorkingDate, &w.Experience); err != nil {
			return err
		}
		resume.WorkExperience = append(resume.WorkExperience, w)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	resume.Education = []domain.Education{}
	rows, err = r.db.Query(ctx, `
		SELECT college, university, course, year, cgpa
		FROM education WHERE resume_id = $1 ORDER BY id`, resume.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch education: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.InstitutionName, &e.UniversityName, &e.CourseName, &e.YearOfCompletion, &e.CGPA); err != nil {
			return err
		}
		resume.Education = append(resume.Education, e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	resume.Projects = []domain.Project{}
	rows, err = r.db.Query(ctx, `
		SELECT project_title, project_link, organization, description
		FROM projects WHERE resume_id = $1 ORDER BY id`, resume.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ProjectTitle, &p.ProjectLink, &p.Organization, &p.Description); err != nil {
			return err
		}
		resume.Projects = append(resume.Projects, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	resume.Skills = []domain.Skill{}
	rows, err = r.db.Query(ctx, `
		SELECT skill_type, skill_name
		FROM skills WHERE resume_id = $1 ORDER BY id`, resume.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.SkillType, &s.SkillName); err != nil {
			return err
		}
		resume.Skills = append(resume.Skills, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	resume.Certifications = []domain.Certification{}
	rows, err = r.db.Query(ctx, `
		SELECT certification_name
		FROM certifications WHERE resume_id = $1 ORDER BY id`, resume.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch certifications: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(&c.CertificationName); err != nil {
			return err
		}
		resume.Certifications = append(resume.Certifications, c)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	resume.Interests = []domain.Interest{}
	rows, err = r.db.Query(ctx, `
		SELECT interest_name
		FROM interests WHERE resume_id = $1 ORDER BY id`, resume.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch interests: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var i domain.Interest
		if err := rows.Scan(&i.InterestName); err != nil {
			return err
		}
		resume.Interests = append(resume.Interests, i)
	}
	return rows.Err()
}
