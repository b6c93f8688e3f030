package response

import (
	"errors"
	"net/http"

	"github.com/kevinlabs/company-directory-go/internal/domain/company"
	"github.com/kevinlabs/company-directory-go/internal/domain/employee"
	"github.com/kevinlabs/company-directory-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrNoFieldsToUpdate):
		BadRequest(w, "No updatable fields provided", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoFieldsToUpdate):
		BadRequest(w, "No updatable fields provided", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
