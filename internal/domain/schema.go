package domain

import "context"

type ColumnInfo struct {
	Column string `json:"column"`
	Type   string `json:"type"`
}

// SchemaInfo is the storage-schema introspection payload for GET /api/schema.
type SchemaInfo struct {
	Tables []string                `json:"tables"`
	Schema map[string][]ColumnInfo `json:"schema"`
}

type SchemaRepository interface {
	Inspect(ctx context.Context) (*SchemaInfo, error)
	Ping(ctx context.Context) error
}
