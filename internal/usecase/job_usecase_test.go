package usecase_test

import (
	"context"
	"testing"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/internal/usecase"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobWithRefs, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithRefs), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context) ([]domain.JobWithRefs, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithRefs), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMasterDataRepo struct {
	mock.Mock
}

func (m *MockMasterDataRepo) List(ctx context.Context, resource string) ([]domain.MasterRecord, error) {
	args := m.Called(ctx, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MasterRecord), args.Error(1)
}

func (m *MockMasterDataRepo) Create(ctx context.Context, resource string, rec *domain.MasterRecord) error {
	return m.Called(ctx, resource, rec).Error(0)
}

func (m *MockMasterDataRepo) Update(ctx context.Context, resource string, rec *domain.MasterRecord) error {
	return m.Called(ctx, resource, rec).Error(0)
}

func (m *MockMasterDataRepo) SoftDelete(ctx context.Context, resource string, id int64) error {
	return m.Called(ctx, resource, id).Error(0)
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateJob(t *testing.T) {
	t.Run("Should reject inverted salary range", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validation.New())

		_, err := uc.CreateJob(context.Background(), &domain.JobInput{
			Title:     "Backend Engineer",
			SalaryMin: floatPtr(9000),
			SalaryMax: floatPtr(5000),
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "salary_min")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should default skill ids and active flag", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validation.New())

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).
			Return(nil).
			Run(func(args mock.Arguments) {
				j := args.Get(1).(*domain.Job)
				assert.True(t, j.Active)
				assert.NotNil(t, j.SkillIDs)
				assert.Empty(t, j.SkillIDs)
			})

		job, err := uc.CreateJob(context.Background(), &domain.JobInput{Title: "Backend Engineer"})
		assert.NoError(t, err)
		assert.Equal(t, "Backend Engineer", job.Title)
	})
}

func TestUpdateJob(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo, validation.New())

	t.Run("Should map missing job to 404", func(t *testing.T) {
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).
			Return(domain.ErrNotFound).Once()

		_, err := uc.UpdateJob(context.Background(), 99, &domain.JobInput{Title: "Renamed Role"})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should carry the path id onto the job", func(t *testing.T) {
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).
			Return(nil).Once().
			Run(func(args mock.Arguments) {
				j := args.Get(1).(*domain.Job)
				assert.Equal(t, int64(7), j.ID)
			})

		job, err := uc.UpdateJob(context.Background(), 7, &domain.JobInput{Title: "Renamed Role"})
		assert.NoError(t, err)
		assert.Equal(t, int64(7), job.ID)
	})
}

func TestDeleteJob(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo, validation.New())

	mockRepo.On("SoftDelete", mock.Anything, int64(5)).Return(nil)

	err := uc.DeleteJob(context.Background(), 5)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMasterDataCreate(t *testing.T) {
	t.Run("Should reject empty names", func(t *testing.T) {
		mockRepo := new(MockMasterDataRepo)
		uc := usecase.NewMasterDataUsecase(mockRepo, validation.New())

		_, err := uc.Create(context.Background(), "sectors", &domain.MasterRecordInput{Name: ""})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Validation error", appErr.Message)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should pass parent id through for hierarchical tables", func(t *testing.T) {
		mockRepo := new(MockMasterDataRepo)
		uc := usecase.NewMasterDataUsecase(mockRepo, validation.New())

		parent := int64(3)
		mockRepo.On("Create", mock.Anything, "states", mock.AnythingOfType("*domain.MasterRecord")).
			Return(nil).
			Run(func(args mock.Arguments) {
				rec := args.Get(2).(*domain.MasterRecord)
				assert.Equal(t, "Karnataka", rec.Name)
				assert.Equal(t, int64(3), *rec.ParentID)
			})

		rec, err := uc.Create(context.Background(), "states", &domain.MasterRecordInput{
			Name:     "Karnataka",
			ParentID: &parent,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Karnataka", rec.Name)
	})
}

func TestMasterDataDelete(t *testing.T) {
	mockRepo := new(MockMasterDataRepo)
	uc := usecase.NewMasterDataUsecase(mockRepo, validation.New())

	t.Run("Should map missing record to 404", func(t *testing.T) {
		mockRepo.On("SoftDelete", mock.Anything, "courses", int64(99)).Return(domain.ErrNotFound)

		err := uc.Delete(context.Background(), "courses", 99)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}
