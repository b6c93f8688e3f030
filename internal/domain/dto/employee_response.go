package dto

import (
	"time"

	"github.com/kevinlabs/company-directory-go/internal/domain/company"
	"github.com/kevinlabs/company-directory-go/internal/domain/employee"
)

type EmployeeResponse struct {
	ID        int64                  `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Position  string                 `json:"position"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	Company   *CompanySimpleResponse `json:"company"`
}

// EmployeeSimpleResponse carries only the employee's own columns. It has no
// company field.
type EmployeeSimpleResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position"`
}

// NewEmployeeResponse builds the full shape from an employee and its already
// loaded company. A nil company serializes as a null company field.
func NewEmployeeResponse(e employee.Employee, c *company.Company) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if c != nil {
		simple := NewCompanySimpleResponse(*c)
		resp.Company = &simple
	}
	return resp
}

func NewEmployeeSimpleResponse(e employee.Employee) EmployeeSimpleResponse {
	return EmployeeSimpleResponse{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		Position: e.Position,
	}
}
