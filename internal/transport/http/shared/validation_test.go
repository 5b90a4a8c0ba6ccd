package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Status   string `validate:"omitempty,oneof=Pending Approved Rejected"`
}

func TestValidateStructValid(t *testing.T) {
	issues := ValidateStruct(samplePayload{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret123",
		Status:   "Pending",
	})
	assert.Empty(t, issues)
}

func TestValidateStructCollectsIssues(t *testing.T) {
	issues := ValidateStruct(samplePayload{Email: "not-an-email", Password: "abc"})

	assert.Contains(t, issues, "name is required")
	assert.Contains(t, issues, "email must be a valid email address")
	assert.Contains(t, issues, "password must be at least 6 characters")
}

func TestFirstIssue(t *testing.T) {
	assert.Equal(t, "", FirstIssue(samplePayload{Name: "a", Email: "a@b.co", Password: "secret123"}))
	assert.NotEqual(t, "", FirstIssue(samplePayload{}))
}

func TestValidateStructEnum(t *testing.T) {
	issues := ValidateStruct(samplePayload{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret123",
		Status:   "Maybe",
	})
	assert.Contains(t, issues, "status must be one of: Pending, Approved, Rejected")
}
