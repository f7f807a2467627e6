package postgres

import (
	"context"
	"errors"
	"fmt"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// Columns the availability probe may touch. Anything else is rejected before
// it reaches SQL.
var identityColumns = map[string]bool{
	"username": true,
	"email":    true,
	"phone":    true,
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, email, phone, password_hash, role, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.Phone, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Duplicate(duplicateMessage(pgErr.ConstraintName))
		}
		return apperror.Internal(err)
	}
	return nil
}

func duplicateMessage(constraint string) string {
	switch constraint {
	case "users_username_key":
		return "Username is already taken"
	case "users_email_key":
		return "Email is already registered"
	case "users_phone_key":
		return "Phone number is already registered"
	default:
		return "User already exists"
	}
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, email, phone, password_hash, role, created_at, updated_at
	          FROM users WHERE username = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.Phone,
		&user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Exists(ctx context.Context, field, value string) (bool, error) {
	if !identityColumns[field] {
		return false, apperror.BadRequest("Unknown field: " + field)
	}
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM users WHERE %s = $1)`, field)
	var exists bool
	if err := r.db.QueryRow(ctx, query, value).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
