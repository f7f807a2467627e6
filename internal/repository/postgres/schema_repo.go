package postgres

import (
	"context"

	"resume-builder-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type schemaRepo struct {
	db *pgxpool.Pool
}

func NewSchemaRepository(db *pgxpool.Pool) domain.SchemaRepository {
	return &schemaRepo{db: db}
}

func (r *schemaRepo) Inspect(ctx context.Context) (*domain.SchemaInfo, error) {
	info := &domain.SchemaInfo{
		Tables: []string{},
		Schema: map[string][]domain.ColumnInfo{},
	}

	rows, err := r.db.Query(ctx, `
		SELECT table_name, column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = 'public'
		ORDER BY table_name, ordinal_position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var table string
		var col domain.ColumnInfo
		if err := rows.Scan(&table, &col.Column, &col.Type); err != nil {
			return nil, err
		}
		if _, seen := info.Schema[table]; !seen {
			info.Tables = append(info.Tables, table)
		}
		info.Schema[table] = append(info.Schema[table], col)
	}
	return info, rows.Err()
}

func (r *schemaRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
