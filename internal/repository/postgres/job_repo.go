package postgres

import (
	"context"
	"errors"
	"fmt"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO jobs
			(title, description, salary_min, salary_max, company_id, job_type_id,
			 course_id, sector_id, country_id, state_id, city_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		job.Title, job.Description, job.SalaryMin, job.SalaryMax,
		job.CompanyID, job.JobTypeID, job.CourseID, job.SectorID,
		job.CountryID, job.StateID, job.CityID,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}
	job.Active = true

	if err := insertJobSkills(ctx, tx, job.ID, job.SkillIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobWithRefs, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.salary_min, j.salary_max,
			j.company_id, j.job_type_id, j.course_id, j.sector_id,
			j.country_id, j.state_id, j.city_id, j.active, j.created_at, j.updated_at,
			co.name, se.name, jt.name, cr.name, ci.name
		FROM jobs j
		LEFT JOIN companies co ON j.company_id = co.id
		LEFT JOIN sectors se ON j.sector_id = se.id
		LEFT JOIN job_types jt ON j.job_type_id = jt.id
		LEFT JOIN courses cr ON j.course_id = cr.id
		LEFT JOIN cities ci ON j.city_id = ci.id
		WHERE j.id = $1 AND j.active = TRUE`

	var job domain.JobWithRefs
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.SalaryMin, &job.SalaryMax,
		&job.CompanyID, &job.JobTypeID, &job.CourseID, &job.SectorID,
		&job.CountryID, &job.StateID, &job.CityID, &job.Active,
		&job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, &job.SectorName, &job.JobTypeName, &job.CourseName, &job.CityName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if job.SkillIDs, err = r.fetchSkillIDs(ctx, job.ID); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.JobWithRefs, error) {
	query := `
		SELECT
			j.id, j.title, j.description, j.salary_min, j.salary_max,
			j.company_id, j.job_type_id, j.course_id, j.sector_id,
			j.country_id, j.state_id, j.city_id, j.active, j.created_at, j.updated_at,
			co.name, se.name, jt.name, cr.name, ci.name
		FROM jobs j
		LEFT JOIN companies co ON j.company_id = co.id
		LEFT JOIN sectors se ON j.sector_id = se.id
		LEFT JOIN job_types jt ON j.job_type_id = jt.id
		LEFT JOIN courses cr ON j.course_id = cr.id
		LEFT JOIN cities ci ON j.city_id = ci.id
		WHERE j.active = TRUE
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobWithRefs{}
	for rows.Next() {
		var job domain.JobWithRefs
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.SalaryMin, &job.SalaryMax,
			&job.CompanyID, &job.JobTypeID, &job.CourseID, &job.SectorID,
			&job.CountryID, &job.StateID, &job.CityID, &job.Active,
			&job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, &job.SectorName, &job.JobTypeName, &job.CourseName, &job.CityName,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range jobs {
		if jobs[i].SkillIDs, err = r.fetchSkillIDs(ctx, jobs[i].ID); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE jobs SET
			title = $2, description = $3, salary_min = $4, salary_max = $5,
			company_id = $6, job_type_id = $7, course_id = $8, sector_id = $9,
			country_id = $10, state_id = $11, city_id = $12, updated_at = NOW()
		WHERE id = $1 AND active = TRUE`,
		job.ID, job.Title, job.Description, job.SalaryMin, job.SalaryMax,
		job.CompanyID, job.JobTypeID, job.CourseID, job.SectorID,
		job.CountryID, job.StateID, job.CityID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// Skill links are replaced wholesale (delete pivot, insert new)
	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, job.ID); err != nil {
		return fmt.Errorf("failed to clean job skills: %w", err)
	}
	if err := insertJobSkills(ctx, tx, job.ID, job.SkillIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *jobRepo) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE jobs SET active = FALSE, updated_at = NOW()
		WHERE id = $1 AND active = TRUE`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) fetchSkillIDs(ctx context.Context, jobID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT skill_id FROM job_skills WHERE job_id = $1 ORDER BY skill_id`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertJobSkills(ctx context.Context, tx pgx.Tx, jobID int64, skillIDs []int64) error {
	for _, sid := range skillIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO job_skills (job_id, skill_id) VALUES ($1, $2)`, jobID, sid); err != nil {
			return fmt.Errorf("failed to insert job skill %d: %w", sid, err)
		}
	}
	return nil
}
