package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kevinlabs/company-directory-go/internal/domain/company"
	"github.com/kevinlabs/company-directory-go/internal/domain/dto"
	"github.com/kevinlabs/company-directory-go/internal/domain/employee"
	"github.com/kevinlabs/company-directory-go/internal/pkg/database"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (dto.EmployeeResponse, error)
	ListByCompany(ctx context.Context, companyID int64) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (dto.EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	companyRepo  company.CompanyRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
) EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
	}
}

// resolveCompany loads the company an employee references, translating a
// missing row into the domain error callers surface as 404.
func (s *EmployeeServiceImpl) resolveCompany(ctx context.Context, companyID int64) (company.Company, error) {
	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by ID: %w", err)
	}
	return c, nil
}

// Create implements EmployeeService.
// The company reference is resolved before the insert so an unknown
// company_id fails with NotFound and persists nothing.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (dto.EmployeeResponse, error) {
	owner, err := s.resolveCompany(ctx, req.CompanyID)
	if err != nil {
		return dto.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:      req.Name,
		Email:     req.Email,
		Position:  req.Position,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		return dto.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return dto.NewEmployeeResponse(created, &owner), nil
}

// GetByID implements EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id int64) (dto.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return dto.EmployeeResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	owner, err := s.resolveCompany(ctx, found.CompanyID)
	if err != nil {
		return dto.EmployeeResponse{}, err
	}

	return dto.NewEmployeeResponse(found, &owner), nil
}

// ListByCompany implements EmployeeService.
func (s *EmployeeServiceImpl) ListByCompany(ctx context.Context, companyID int64) ([]dto.EmployeeResponse, error) {
	owner, err := s.resolveCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees for company %d: %w", companyID, err)
	}

	responses := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, dto.NewEmployeeResponse(e, &owner))
	}
	return responses, nil
}

// Update implements EmployeeService.
// Reassigning company_id is a plain field mutation, but the new company must
// exist before the row is touched.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (dto.EmployeeResponse, error) {
	if req.CompanyID != nil {
		if _, err := s.resolveCompany(ctx, *req.CompanyID); err != nil {
			return dto.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return dto.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements EmployeeService.
// Employee deletion is independent; the owning company is untouched.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}
