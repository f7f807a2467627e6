package domain

import (
	"context"
	"time"
)

// MasterRecord is the uniform shape of every lookup table row (sectors,
// countries, states, cities, courses, job types, job skills, companies).
// ParentID is set only for hierarchical tables: states reference a country,
// cities reference a state.
type MasterRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MasterRecordInput struct {
	Name     string `json:"name" validate:"required,min=1,max=150"`
	ParentID *int64 `json:"parent_id"`
}

type MasterDataRepository interface {
	List(ctx context.Context, resource string) ([]MasterRecord, error)
	Create(ctx context.Context, resource string, rec *MasterRecord) error
	Update(ctx context.Context, resource string, rec *MasterRecord) error
	SoftDelete(ctx context.Context, resource string, id int64) error
}

type MasterDataUsecase interface {
	List(ctx context.Context, resource string) ([]MasterRecord, error)
	Create(ctx context.Context, resource string, input *MasterRecordInput) (*MasterRecord, error)
	Update(ctx context.Context, resource string, id int64, input *MasterRecordInput) (*MasterRecord, error)
	Delete(ctx context.Context, resource string, id int64) error
}
