package usecase_test

import (
	"context"
	"errors"
	"testing"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/internal/usecase"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories
type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) CreateAggregate(ctx context.Context, resume *domain.Resume) (int64, error) {
	args := m.Called(ctx, resume)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResumeRepo) GetAggregate(ctx context.Context, id int64) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) ListAggregates(ctx context.Context) ([]domain.Resume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Exists(ctx context.Context, field, value string) (bool, error) {
	args := m.Called(ctx, field, value)
	return args.Bool(0), args.Error(1)
}

type MockAnalyticsRepo struct {
	mock.Mock
}

func (m *MockAnalyticsRepo) IncrementVisitor(ctx context.Context) (*domain.CounterResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CounterResult), args.Error(1)
}

func (m *MockAnalyticsRepo) IncrementDownload(ctx context.Context, resumeID int64) (*domain.CounterResult, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CounterResult), args.Error(1)
}

func (m *MockAnalyticsRepo) Totals(ctx context.Context) (*domain.AnalyticsTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsTotals), args.Error(1)
}

func strPtr(s string) *string { return &s }

func validSubmission() *domain.ResumeSubmission {
	return &domain.ResumeSubmission{
		PersonalInfo: &domain.PersonalInfo{
			FullName:        "Jane Doe",
			Email:           "jane@example.com",
			PhoneNumber:     "08123456789",
			DateOfBirth:     "1998-04-12",
			Location:        "Jakarta",
			CareerObjective: "Build reliable backend systems",
		},
		Signature: "Jane Doe",
	}
}

func TestSubmitResumeValidation(t *testing.T) {
	mockRepo := new(MockResumeRepo)
	uc := usecase.NewResumeUsecase(mockRepo, validation.New(), t.TempDir())

	t.Run("Should reject submission without personal info", func(t *testing.T) {
		_, err := uc.SubmitResume(context.Background(), &domain.ResumeSubmission{Signature: "x"})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Validation error", appErr.Message)

		details := appErr.Details.(map[string][]string)
		assert.Contains(t, details, "personal_info")
		mockRepo.AssertNotCalled(t, "CreateAggregate")
	})

	t.Run("Should report nested field paths with json names", func(t *testing.T) {
		sub := validSubmission()
		sub.PersonalInfo.FullName = "J"
		sub.PersonalInfo.Email = "not-an-email"

		_, err := uc.SubmitResume(context.Background(), sub)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)

		details := appErr.Details.(map[string][]string)
		assert.Equal(t, []string{"Must be at least 2 characters"}, details["personal_info.full_name"])
		assert.Equal(t, []string{"Not a valid email address"}, details["personal_info.email"])
		mockRepo.AssertNotCalled(t, "CreateAggregate")
	})

	t.Run("Should reject missing signature", func(t *testing.T) {
		sub := validSubmission()
		sub.Signature = ""

		_, err := uc.SubmitResume(context.Background(), sub)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		details := appErr.Details.(map[string][]string)
		assert.Equal(t, []string{"Missing data for required field"}, details["signature"])
	})
}

func TestSubmitResumeNormalization(t *testing.T) {
	newUC := func(repo *MockResumeRepo) domain.ResumeUsecase {
		return usecase.NewResumeUsecase(repo, validation.New(), t.TempDir())
	}

	t.Run("Should synthesize title from full name", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := newUC(mockRepo)

		mockRepo.On("CreateAggregate", mock.Anything, mock.AnythingOfType("*domain.Resume")).
			Return(int64(7), nil).
			Run(func(args mock.Arguments) {
				r := args.Get(1).(*domain.Resume)
				assert.Equal(t, "Jane Doe's Resume", r.Title)
				assert.Equal(t, domain.StatusDraft, r.Status)
			})

		id, err := uc.SubmitResume(context.Background(), validSubmission())
		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should keep explicit title", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := newUC(mockRepo)

		sub := validSubmission()
		sub.ResumeTitle = "Backend Engineer"

		mockRepo.On("CreateAggregate", mock.Anything, mock.AnythingOfType("*domain.Resume")).
			Return(int64(1), nil).
			Run(func(args mock.Arguments) {
				r := args.Get(1).(*domain.Resume)
				assert.Equal(t, "Backend Engineer", r.Title)
			})

		_, err := uc.SubmitResume(context.Background(), sub)
		assert.NoError(t, err)
	})

	t.Run("Should drop blank child entries but keep partial ones", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := newUC(mockRepo)

		sub := validSubmission()
		sub.WorkExperience = []domain.WorkExperience{
			{CompanyName: strPtr("Acme"), JobRole: strPtr("Engineer")},
			{Experience: strPtr("2 years")}, // no company, no role
		}
		sub.Education = []domain.Education{
			{InstitutionName: strPtr("State University")},
			{CGPA: strPtr("3.8")}, // no institution, no course
		}
		sub.Projects = []domain.Project{
			{Description: strPtr("orphan description")},
		}

		mockRepo.On("CreateAggregate", mock.Anything, mock.AnythingOfType("*domain.Resume")).
			Return(int64(1), nil).
			Run(func(args mock.Arguments) {
				r := args.Get(1).(*domain.Resume)
				assert.Len(t, r.WorkExperience, 1)
				assert.Equal(t, "Acme", *r.WorkExperience[0].CompanyName)
				assert.Len(t, r.Education, 1)
				assert.Len(t, r.Projects, 0)
			})

		_, err := uc.SubmitResume(context.Background(), sub)
		assert.NoError(t, err)
	})

	t.Run("Should normalize missing collections to empty slices", func(t *testing.T) {
		mockRepo := new(MockResumeRepo)
		uc := newUC(mockRepo)

		mockRepo.On("CreateAggregate", mock.Anything, mock.AnythingOfType("*domain.Resume")).
			Return(int64(1), nil).
			Run(func(args mock.Arguments) {
				r := args.Get(1).(*domain.Resume)
				assert.NotNil(t, r.Skills)
				assert.NotNil(t, r.Certifications)
				assert.NotNil(t, r.Interests)
				assert.Empty(t, r.Skills)
			})

		_, err := uc.SubmitResume(context.Background(), validSubmission())
		assert.NoError(t, err)
	})
}

func TestGetResume(t *testing.T) {
	mockRepo := new(MockResumeRepo)
	uc := usecase.NewResumeUsecase(mockRepo, validation.New(), t.TempDir())

	t.Run("Should map missing resume to 404", func(t *testing.T) {
		mockRepo.On("GetAggregate", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetResume(context.Background(), 99)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestAuthRegister(t *testing.T) {
	t.Run("Should reject weak input without hitting the repo", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validation.New())

		_, err := uc.Register(context.Background(), &domain.RegisterInput{
			Username: "jd",
			Email:    "bad",
			Phone:    "123",
			Password: "short",
			Role:     "superuser",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		details := appErr.Details.(map[string][]string)
		assert.Contains(t, details, "username")
		assert.Contains(t, details, "role")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should store a bcrypt hash, never the password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validation.New())

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*domain.User)
				assert.NotEqual(t, "secret-password", u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-password")))
			})

		user, err := uc.Register(context.Background(), &domain.RegisterInput{
			Username: "janedoe",
			Email:    "jane@example.com",
			Phone:    "08123456789",
			Password: "secret-password",
			Role:     domain.RoleCandidate,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleCandidate, user.Role)
	})

	t.Run("Should pass through duplicate errors from the repo", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validation.New())

		mockRepo.On("Create", mock.Anything, mock.Anything).
			Return(apperror.Duplicate("Username already exists"))

		_, err := uc.Register(context.Background(), &domain.RegisterInput{
			Username: "janedoe",
			Email:    "jane@example.com",
			Phone:    "08123456789",
			Password: "secret-password",
			Role:     domain.RoleCandidate,
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Username already exists", appErr.Message)
	})
}

func TestAuthLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	stored := &domain.User{
		ID:           1,
		Username:     "janedoe",
		Role:         domain.RoleRecruiter,
		PasswordHash: string(hash),
	}

	t.Run("Should return stored role on success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validation.New())

		mockRepo.On("GetByUsername", mock.Anything, "janedoe").Return(stored, nil)

		user, err := uc.Login(context.Background(), "janedoe", "correct-password")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleRecruiter, user.Role)
	})

	t.Run("Should use the same error for unknown user and wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, validation.New())

		mockRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByUsername", mock.Anything, "janedoe").Return(stored, nil)

		_, errUnknown := uc.Login(context.Background(), "nobody", "whatever")
		_, errWrongPass := uc.Login(context.Background(), "janedoe", "wrong")

		assert.EqualError(t, errUnknown, "Invalid username or password")
		assert.EqualError(t, errWrongPass, "Invalid username or password")
	})
}

func TestCheckAvailability(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, validation.New())

	t.Run("Should report taken identifiers as unavailable", func(t *testing.T) {
		mockRepo.On("Exists", mock.Anything, "username", "janedoe").Return(true, nil)

		available, err := uc.CheckAvailability(context.Background(), "username", "janedoe")
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("Should report free identifiers as available", func(t *testing.T) {
		mockRepo.On("Exists", mock.Anything, "email", "new@example.com").Return(false, nil)

		available, err := uc.CheckAvailability(context.Background(), "email", "new@example.com")
		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("Should reject empty values", func(t *testing.T) {
		_, err := uc.CheckAvailability(context.Background(), "username", "")
		assert.Error(t, err)
	})
}

func TestTrackDownload(t *testing.T) {
	t.Run("Should map missing resume to 404", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepo)
		uc := usecase.NewAnalyticsUsecase(mockRepo)

		mockRepo.On("IncrementDownload", mock.Anything, int64(42)).Return(nil, domain.ErrNotFound)

		_, err := uc.TrackDownload(context.Background(), 42)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should hand back the repo counter result", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepo)
		uc := usecase.NewAnalyticsUsecase(mockRepo)

		mockRepo.On("IncrementDownload", mock.Anything, int64(0)).
			Return(&domain.CounterResult{ResumeID: 3, Count: 12}, nil)

		res, err := uc.TrackDownload(context.Background(), 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), res.ResumeID)
		assert.Equal(t, int64(12), res.Count)
	})
}

func TestTrackVisitorWrapsFailures(t *testing.T) {
	mockRepo := new(MockAnalyticsRepo)
	uc := usecase.NewAnalyticsUsecase(mockRepo)

	mockRepo.On("IncrementVisitor", mock.Anything).Return(nil, errors.New("db down"))

	_, err := uc.TrackVisitor(context.Background())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
}
