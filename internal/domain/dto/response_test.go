package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/kevinlabs/company-directory-go/internal/domain/company"
	"github.com/kevinlabs/company-directory-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompany() company.Company {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return company.Company{
		ID:        1,
		Name:      "Tech",
		Address:   "Seoul",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testEmployees(companyID int64) []employee.Employee {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return []employee.Employee{
		{ID: 10, Name: "Kim", Email: "kim@x.com", Position: "Dev", CompanyID: companyID, CreatedAt: now, UpdatedAt: now},
		{ID: 11, Name: "Lee", Email: "lee@x.com", Position: "QA", CompanyID: companyID, CreatedAt: now, UpdatedAt: now},
	}
}

func TestNewCompanyResponse_EmbedsEmployeesAsSimple(t *testing.T) {
	c := testCompany()
	employees := testEmployees(c.ID)

	resp := NewCompanyResponse(c, employees)

	require.Len(t, resp.Employees, len(employees))
	for i, e := range employees {
		assert.Equal(t, e.ID, resp.Employees[i].ID)
		assert.Equal(t, e.Name, resp.Employees[i].Name)
		assert.Equal(t, e.Email, resp.Employees[i].Email)
		assert.Equal(t, e.Position, resp.Employees[i].Position)
	}
}

func TestNewCompanyResponse_NoEmployees(t *testing.T) {
	resp := NewCompanyResponse(testCompany(), nil)

	// The list serializes as [], never null.
	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, []interface{}{}, decoded["employees"])
}

func TestEmbeddedEmployee_CarriesNoCompanyField(t *testing.T) {
	resp := NewCompanyResponse(testCompany(), testEmployees(1))

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Employees []map[string]interface{} `json:"employees"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.NotEmpty(t, decoded.Employees)
	for _, e := range decoded.Employees {
		assert.NotContains(t, e, "company")
		assert.NotContains(t, e, "company_id")
	}
}

func TestNewEmployeeResponse_EmbedsCompanyAsSimple(t *testing.T) {
	c := testCompany()
	e := testEmployees(c.ID)[0]

	resp := NewEmployeeResponse(e, &c)

	require.NotNil(t, resp.Company)
	assert.Equal(t, NewCompanySimpleResponse(c), *resp.Company)
}

func TestEmbeddedCompany_CarriesNoEmployeesField(t *testing.T) {
	c := testCompany()
	e := testEmployees(c.ID)[0]

	body, err := json.Marshal(NewEmployeeResponse(e, &c))
	require.NoError(t, err)

	var decoded struct {
		Company map[string]interface{} `json:"company"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.NotNil(t, decoded.Company)
	assert.NotContains(t, decoded.Company, "employees")
	assert.EqualValues(t, c.ID, decoded.Company["id"])
}

func TestNewEmployeeResponse_UnassignedCompanyIsNull(t *testing.T) {
	e := testEmployees(0)[0]

	body, err := json.Marshal(NewEmployeeResponse(e, nil))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	v, present := decoded["company"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestSimpleShapes_ContainNoRelatedShapes(t *testing.T) {
	c := testCompany()
	e := testEmployees(c.ID)[0]

	companyJSON, err := json.Marshal(NewCompanySimpleResponse(c))
	require.NoError(t, err)
	employeeJSON, err := json.Marshal(NewEmployeeSimpleResponse(e))
	require.NoError(t, err)

	var companyKeys, employeeKeys map[string]interface{}
	require.NoError(t, json.Unmarshal(companyJSON, &companyKeys))
	require.NoError(t, json.Unmarshal(employeeJSON, &employeeKeys))

	assert.NotContains(t, companyKeys, "employees")
	assert.NotContains(t, employeeKeys, "company")

	// Scalar fields only on both simple shapes.
	for key, v := range companyKeys {
		_, isObject := v.(map[string]interface{})
		_, isList := v.([]interface{})
		assert.False(t, isObject || isList, "company simple field %q is not scalar", key)
	}
	for key, v := range employeeKeys {
		_, isObject := v.(map[string]interface{})
		_, isList := v.([]interface{})
		assert.False(t, isObject || isList, "employee simple field %q is not scalar", key)
	}
}
