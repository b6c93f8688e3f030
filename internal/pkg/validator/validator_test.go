package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"kim@x.com", "a.b+c@example.co.id", "dev_1@sub.domain.org"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "kim", "kim@", "@x.com", "kim@x", "kim x@x.com"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email format is invalid"},
	}

	assert.Equal(t, "name: name is required; email: email format is invalid", errs.Error())
	assert.Equal(t, map[string]string{
		"name":  "name is required",
		"email": "email format is invalid",
	}, errs.ToMap())
}
