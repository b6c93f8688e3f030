package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kevinlabs/company-directory-go/internal/domain/company"
	"github.com/kevinlabs/company-directory-go/internal/domain/dto"
	"github.com/kevinlabs/company-directory-go/internal/domain/employee"
	"github.com/kevinlabs/company-directory-go/internal/pkg/database"
	"github.com/kevinlabs/company-directory-go/internal/repository/postgresql"
)

// CompanyService returns full response shapes only; the simple shapes appear
// solely embedded inside the related entity's full shape.
type CompanyService interface {
	List(ctx context.Context) ([]dto.CompanyResponse, error)
	Create(ctx context.Context, req company.CreateCompanyRequest) (dto.CompanyResponse, error)
	GetByID(ctx context.Context, id int64) (dto.CompanyResponse, error)
	Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) (dto.CompanyResponse, error)
	Delete(ctx context.Context, id int64) error
}

type CompanyServiceImpl struct {
	db           *database.DB
	companyRepo  company.CompanyRepository
	employeeRepo employee.EmployeeRepository
}

func NewCompanyService(
	db *database.DB,
	companyRepo company.CompanyRepository,
	employeeRepo employee.EmployeeRepository,
) CompanyService {
	return &CompanyServiceImpl{
		db:           db,
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements CompanyService.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (dto.CompanyResponse, error) {
	created, err := s.companyRepo.Create(ctx, company.Company{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return dto.CompanyResponse{}, fmt.Errorf("failed to create company: %w", err)
	}

	// A fresh company owns no employees yet.
	return dto.NewCompanyResponse(created, nil), nil
}

// GetByID implements CompanyService.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, id int64) (dto.CompanyResponse, error) {
	found, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.CompanyResponse{}, company.ErrCompanyNotFound
		}
		return dto.CompanyResponse{}, fmt.Errorf("failed to get company by ID: %w", err)
	}

	employees, err := s.employeeRepo.ListByCompanyID(ctx, id)
	if err != nil {
		return dto.CompanyResponse{}, fmt.Errorf("failed to list employees for company %d: %w", id, err)
	}

	return dto.NewCompanyResponse(found, employees), nil
}

// List implements CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		employees, err := s.employeeRepo.ListByCompanyID(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees for company %d: %w", c.ID, err)
		}
		responses = append(responses, dto.NewCompanyResponse(c, employees))
	}

	return responses, nil
}

// Update implements CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) (dto.CompanyResponse, error) {
	if err := s.companyRepo.Update(ctx, id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.CompanyResponse{}, company.ErrCompanyNotFound
		}
		return dto.CompanyResponse{}, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements CompanyService.
// A company owns its employees, so deletion cascades: dependents first, then
// the company itself, in one transaction.
func (s *CompanyServiceImpl) Delete(ctx context.Context, id int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.companyRepo.GetByID(txCtx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return company.ErrCompanyNotFound
			}
			return fmt.Errorf("failed to get company by ID: %w", err)
		}

		if err := s.employeeRepo.DeleteByCompanyID(txCtx, id); err != nil {
			return err
		}

		if err := s.companyRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete company %d: %w", id, err)
		}
		return nil
	})
}
