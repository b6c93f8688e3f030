// Package dto holds the response shapes shared by all services.
//
// Shapes come in two flavors per entity: a full response used at the API
// boundary, and a simple response used only when embedded inside the related
// entity's full response. A full shape may embed the related entity's simple
// shape; a simple shape embeds no related shape at all. That one-level
// truncation keeps the serialized graph acyclic: a company's employee list
// never points back at the company, and an employee's company never carries
// an employee list.
package dto

import (
	"time"

	"github.com/kevinlabs/company-directory-go/internal/domain/company"
	"github.com/kevinlabs/company-directory-go/internal/domain/employee"
)

type CompanyResponse struct {
	ID        int64                    `json:"id"`
	Name      string                   `json:"name"`
	Address   string                   `json:"address"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
	Employees []EmployeeSimpleResponse `json:"employees"`
}

// CompanySimpleResponse carries only the company's own columns. It has no
// employees field.
type CompanySimpleResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCompanyResponse builds the full shape from a company and its already
// loaded employees. It performs no lookups of its own; the caller decides
// what was loaded.
func NewCompanyResponse(c company.Company, employees []employee.Employee) CompanyResponse {
	resp := CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Employees: make([]EmployeeSimpleResponse, 0, len(employees)),
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, NewEmployeeSimpleResponse(e))
	}
	return resp
}

func NewCompanySimpleResponse(c company.Company) CompanySimpleResponse {
	return CompanySimpleResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
