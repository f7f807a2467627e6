package usecase

import (
	"context"
	"errors"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, validate: validate}
}

func (u *authUsecase) Register(ctx context.Context, input *domain.RegisterInput) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation(validation.Errors(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         input.Role,
		PasswordHash: string(hash),
	}
	// Duplicate detection happens at the unique constraint, not with a prior
	// SELECT, so two racing registrations cannot both slip through.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by username and password. The stored role is returned
// with the profile; it is never part of the credentials. Both unknown-user and
// wrong-password reply with the same generic error.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid username or password")
		}
		return nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid username or password")
	}
	return user, nil
}

func (u *authUsecase) CheckAvailability(ctx context.Context, field, value string) (bool, error) {
	if value == "" {
		return false, apperror.BadRequest("Value is required")
	}
	exists, err := u.userRepo.Exists(ctx, field, value)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return false, appErr
		}
		return false, apperror.Internal(err)
	}
	return !exists, nil
}
