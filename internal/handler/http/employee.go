package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kevinlabs/company-directory-go/internal/domain/employee"
	"github.com/kevinlabs/company-directory-go/internal/handler/http/response"
	employeeservice "github.com/kevinlabs/company-directory-go/internal/service/employee"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employeeservice.EmployeeService
}

func NewEmployeeHandler(employeeService employeeservice.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := e.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create employee", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// GetByID implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	found, err := e.employeeService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Failed to get employee", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByCompany implements EmployeeHandler.
func (e *EmployeeHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := parseIDParam(r, "companyID")
	if !ok {
		response.BadRequest(w, "Invalid company id", nil)
		return
	}

	employees, err := e.employeeService.ListByCompany(r.Context(), companyID)
	if err != nil {
		slog.Error("Failed to list employees", "company_id", companyID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := e.employeeService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Employee update service error", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// Delete implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	if err := e.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("Employee delete service error", "employee_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}
