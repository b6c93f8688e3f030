package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kevinlabs/company-directory-go/internal/domain/employee"
	"github.com/kevinlabs/company-directory-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (name, email, position, company_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, position, company_id, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query, newEmployee.Name, newEmployee.Email, newEmployee.Position, newEmployee.CompanyID).
		Scan(&created.ID, &created.Name, &created.Email, &created.Position,
			&created.CompanyID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, position, company_id, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.Email, &found.Position,
			&found.CompanyID, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return found, nil
}

// ListByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByCompanyID(ctx context.Context, companyID int64) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, position, company_id, created_at, updated_at
		FROM employees
		WHERE company_id = $1
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Position,
			&emp.CompanyID, &emp.CreatedAt, &emp.UpdatedAt)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.CompanyID != nil {
		updates["company_id"] = *req.CompanyID
	}

	if len(updates) == 0 {
		return employee.ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE employees SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID int64
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update employee with id %d: %w", id, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	var deletedID int64
	err := q.QueryRow(ctx, `DELETE FROM employees WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		return err
	}
	return nil
}

// DeleteByCompanyID implements employee.EmployeeRepository.
// Used by the company delete cascade; deleting zero rows is not an error.
func (e *employeeRepositoryImpl) DeleteByCompanyID(ctx context.Context, companyID int64) error {
	q := GetQuerier(ctx, e.db)

	_, err := q.Exec(ctx, `DELETE FROM employees WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete employees for company %d: %w", companyID, err)
	}
	return nil
}
