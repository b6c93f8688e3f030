package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	ListByCompanyID(ctx context.Context, companyID int64) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id int64) error
	DeleteByCompanyID(ctx context.Context, companyID int64) error
}
