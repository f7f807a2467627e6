package postgres

import (
	"context"
	"fmt"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// masterTable declares one lookup table: its storage names and, for
// hierarchical tables, the parent reference column. All master-data CRUD is
// generated from these descriptors instead of per-table copies of the same SQL.
type masterTable struct {
	table        string
	nameColumn   string
	parentColumn string // empty for flat tables
}

var masterTables = map[string]masterTable{
	"sectors":           {table: "sectors", nameColumn: "name"},
	"countries":         {table: "countries", nameColumn: "name"},
	"states":            {table: "states", nameColumn: "name", parentColumn: "country_id"},
	"cities":            {table: "cities", nameColumn: "name", parentColumn: "state_id"},
	"courses":           {table: "courses", nameColumn: "name"},
	"job-types":         {table: "job_types", nameColumn: "name"},
	"job-skills-master": {table: "job_skills_master", nameColumn: "name"},
	"companies":         {table: "companies", nameColumn: "name"},
}

// MasterResources lists the registered lookup resources in route form.
func MasterResources() []string {
	names := make([]string, 0, len(masterTables))
	for name := range masterTables {
		names = append(names, name)
	}
	return names
}

type masterDataRepo struct {
	db *pgxpool.Pool
}

func NewMasterDataRepository(db *pgxpool.Pool) domain.MasterDataRepository {
	return &masterDataRepo{db: db}
}

func (r *masterDataRepo) descriptor(resource string) (masterTable, error) {
	mt, ok := masterTables[resource]
	if !ok {
		return masterTable{}, fmt.Errorf("unknown master-data resource %q", resource)
	}
	return mt, nil
}

func (r *masterDataRepo) List(ctx context.Context, resource string) ([]domain.MasterRecord, error) {
	mt, err := r.descriptor(resource)
	if err != nil {
		return nil, err
	}

	parentCol := "NULL"
	if mt.parentColumn != "" {
		parentCol = mt.parentColumn
	}
	query := fmt.Sprintf(`
		SELECT id, %s, %s, active, created_at, updated_at
		FROM %s WHERE active = TRUE ORDER BY %s`,
		mt.nameColumn, parentCol, mt.table, mt.nameColumn)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.MasterRecord{}
	for rows.Next() {
		var rec domain.MasterRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.ParentID, &rec.Active, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *masterDataRepo) Create(ctx context.Context, resource string, rec *domain.MasterRecord) error {
	mt, err := r.descriptor(resource)
	if err != nil {
		return err
	}

	var query string
	var row pgx.Row
	if mt.parentColumn != "" {
		query = fmt.Sprintf(`
			INSERT INTO %s (%s, %s, active, created_at, updated_at)
			VALUES ($1, $2, TRUE, NOW(), NOW())
			RETURNING id, created_at, updated_at`,
			mt.table, mt.nameColumn, mt.parentColumn)
		row = r.db.QueryRow(ctx, query, rec.Name, rec.ParentID)
	} else {
		query = fmt.Sprintf(`
			INSERT INTO %s (%s, active, created_at, updated_at)
			VALUES ($1, TRUE, NOW(), NOW())
			RETURNING id, created_at, updated_at`,
			mt.table, mt.nameColumn)
		row = r.db.QueryRow(ctx, query, rec.Name)
	}

	if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return err
	}
	rec.Active = true
	return nil
}

func (r *masterDataRepo) Update(ctx context.Context, resource string, rec *domain.MasterRecord) error {
	mt, err := r.descriptor(resource)
	if err != nil {
		return err
	}

	var tag pgconn.CommandTag
	if mt.parentColumn != "" {
		query := fmt.Sprintf(`
			UPDATE %s SET %s = $2, %s = $3, updated_at = NOW()
			WHERE id = $1 AND active = TRUE`,
			mt.table, mt.nameColumn, mt.parentColumn)
		tag, err = r.db.Exec(ctx, query, rec.ID, rec.Name, rec.ParentID)
	} else {
		query := fmt.Sprintf(`
			UPDATE %s SET %s = $2, updated_at = NOW()
			WHERE id = $1 AND active = TRUE`,
			mt.table, mt.nameColumn)
		tag, err = r.db.Exec(ctx, query, rec.ID, rec.Name)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *masterDataRepo) SoftDelete(ctx context.Context, resource string, id int64) error {
	mt, err := r.descriptor(resource)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s SET active = FALSE, updated_at = NOW()
		WHERE id = $1 AND active = TRUE`, mt.table)
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
