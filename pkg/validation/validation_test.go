package validation_test

import (
	"testing"

	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestErrorsUseJSONFieldPaths(t *testing.T) {
	v := validation.New()

	sub := &domain.ResumeSubmission{
		PersonalInfo: &domain.PersonalInfo{
			FullName:        "A",
			Email:           "nope",
			PhoneNumber:     "123",
			DateOfBirth:     "1990-01-01",
			Location:        "Pune",
			CareerObjective: "x",
		},
		Signature: "sig",
	}

	err := v.Struct(sub)
	assert.Error(t, err)

	report := validation.Errors(err)
	assert.Equal(t, []string{"Must be at least 2 characters"}, report["personal_info.full_name"])
	assert.Equal(t, []string{"Not a valid email address"}, report["personal_info.email"])
	assert.Equal(t, []string{"Must be at least 10 characters"}, report["personal_info.phone_number"])
}

func TestErrorsIndexNestedCollections(t *testing.T) {
	v := validation.New()

	sub := &domain.ResumeSubmission{
		PersonalInfo: &domain.PersonalInfo{
			FullName:        "Jane Doe",
			Email:           "jane@example.com",
			PhoneNumber:     "08123456789",
			DateOfBirth:     "1990-01-01",
			Location:        "Pune",
			CareerObjective: "x",
		},
		Skills:    []domain.Skill{{SkillType: "technical"}}, // missing skill_name
		Signature: "sig",
	}

	err := v.Struct(sub)
	assert.Error(t, err)

	report := validation.Errors(err)
	assert.Equal(t, []string{"Missing data for required field"}, report["skills[0].skill_name"])
}

func TestErrorsRequiredAndOneof(t *testing.T) {
	v := validation.New()

	err := v.Struct(&domain.RegisterInput{
		Username: "janedoe",
		Email:    "jane@example.com",
		Phone:    "08123456789",
		Password: "secret-password",
		Role:     "superuser",
	})
	assert.Error(t, err)

	report := validation.Errors(err)
	assert.Equal(t, []string{"Must be one of: candidate, recruiter, admin"}, report["role"])
}

func TestErrorsWrapsNonValidationFailures(t *testing.T) {
	report := validation.Errors(assert.AnError)
	assert.Contains(t, report, "_")
}
