package company

import (
	"context"
	"os"
	"testing"

	"github.com/kevinlabs/company-directory-go/internal/domain/company"
	"github.com/kevinlabs/company-directory-go/internal/pkg/database"
	"github.com/kevinlabs/company-directory-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCompanyDB *database.DB

// companyTestInit connects to the test database, skipping the test when
// TEST_DATABASE_URL is not set.
func companyTestInit(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	if testCompanyDB != nil {
		return
	}

	var err error
	testCompanyDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func truncateCompanyTables(t *testing.T, ctx context.Context) {
	_, err := testCompanyDB.Exec(ctx, "TRUNCATE TABLE employees, companies RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func newTestCompanyService(t *testing.T) CompanyService {
	companyRepo := postgresql.NewCompanyRepository(testCompanyDB)
	employeeRepo := postgresql.NewEmployeeRepository(testCompanyDB)
	return NewCompanyService(testCompanyDB, companyRepo, employeeRepo)
}

func insertTestEmployee(t *testing.T, ctx context.Context, companyID int64, name, email string) int64 {
	var id int64
	err := testCompanyDB.QueryRow(ctx, `
		INSERT INTO employees (name, email, position, company_id)
		VALUES ($1, $2, 'Dev', $3)
		RETURNING id
	`, name, email, companyID).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestCompanyService_Create(t *testing.T) {
	ctx := context.Background()
	companyTestInit(t)
	truncateCompanyTables(t, ctx)

	svc := newTestCompanyService(t)

	created, err := svc.Create(ctx, company.CreateCompanyRequest{Name: "Tech", Address: "Seoul"})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Tech", created.Name)
	assert.Equal(t, "Seoul", created.Address)
	assert.Empty(t, created.Employees)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCompanyService_GetByID_WithEmployees(t *testing.T) {
	ctx := context.Background()
	companyTestInit(t)
	truncateCompanyTables(t, ctx)

	svc := newTestCompanyService(t)

	created, err := svc.Create(ctx, company.CreateCompanyRequest{Name: "Tech", Address: "Seoul"})
	require.NoError(t, err)

	kimID := insertTestEmployee(t, ctx, created.ID, "Kim", "kim@x.com")
	leeID := insertTestEmployee(t, ctx, created.ID, "Lee", "lee@x.com")

	found, err := svc.GetByID(ctx, created.ID)

	require.NoError(t, err)
	require.Len(t, found.Employees, 2)
	assert.Equal(t, kimID, found.Employees[0].ID)
	assert.Equal(t, leeID, found.Employees[1].ID)
	assert.Equal(t, "Kim", found.Employees[0].Name)
}

func TestCompanyService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	companyTestInit(t)
	truncateCompanyTables(t, ctx)

	svc := newTestCompanyService(t)

	_, err := svc.GetByID(ctx, 999)

	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestCompanyService_Update(t *testing.T) {
	ctx := context.Background()
	companyTestInit(t)
	truncateCompanyTables(t, ctx)

	svc := newTestCompanyService(t)

	created, err := svc.Create(ctx, company.CreateCompanyRequest{Name: "Tech", Address: "Seoul"})
	require.NoError(t, err)

	newName := "Tech Global"
	updated, err := svc.Update(ctx, created.ID, company.UpdateCompanyRequest{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Tech Global", updated.Name)
	assert.Equal(t, "Seoul", updated.Address)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestCompanyService_Delete_CascadesToEmployees(t *testing.T) {
	ctx := context.Background()
	companyTestInit(t)
	truncateCompanyTables(t, ctx)

	svc := newTestCompanyService(t)

	created, err := svc.Create(ctx, company.CreateCompanyRequest{Name: "Tech", Address: "Seoul"})
	require.NoError(t, err)
	insertTestEmployee(t, ctx, created.ID, "Kim", "kim@x.com")

	err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)

	var employeeCount int
	err = testCompanyDB.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE company_id = $1`, created.ID).Scan(&employeeCount)
	require.NoError(t, err)
	assert.Zero(t, employeeCount)
}

func TestCompanyService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	companyTestInit(t)
	truncateCompanyTables(t, ctx)

	svc := newTestCompanyService(t)

	err := svc.Delete(ctx, 999)

	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}
