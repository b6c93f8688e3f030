package employee

import (
	"testing"

	"github.com/kevinlabs/company-directory-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{Name: "Kim", Email: "kim@x.com", Position: "Dev", CompanyID: 1}
	assert.NoError(t, valid.Validate())

	missing := CreateEmployeeRequest{}
	err := missing.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "position")
	assert.Contains(t, fields, "company_id")
}

func TestCreateEmployeeRequest_Validate_BadEmail(t *testing.T) {
	req := CreateEmployeeRequest{Name: "Kim", Email: "not-an-email", Position: "Dev", CompanyID: 1}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, map[string]string{"email": "email format is invalid"}, errs.ToMap())
}

func TestUpdateEmployeeRequest_Validate(t *testing.T) {
	empty := UpdateEmployeeRequest{}
	assert.NoError(t, empty.Validate())

	name := "Kim"
	companyID := int64(2)
	partial := UpdateEmployeeRequest{Name: &name, CompanyID: &companyID}
	assert.NoError(t, partial.Validate())

	blank := ""
	zero := int64(0)
	bad := UpdateEmployeeRequest{Name: &blank, Email: &blank, Position: &blank, CompanyID: &zero}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "position")
	assert.Contains(t, fields, "company_id")
}
