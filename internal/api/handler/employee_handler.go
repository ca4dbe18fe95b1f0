package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worklog/timesheet-dashboard/internal/api/middleware"
	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

type EmployeeHandler struct {
	employees ports.EmployeeService
}

func NewEmployeeHandler(employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// List handles GET /admin/employees.
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employees.List(c.Request().Context(), middleware.CurrentSession(c))
	if errors.Is(err, domain.ErrForbidden) {
		return err
	}

	p := newPage(c, "Employees")
	if err != nil {
		p.Flash = domain.ErrorFlash(domain.UserMessage(err, "Failed to load employees"))
	} else {
		p.Flash = flashFromQuery(c)
	}
	p.Data = employeesView{Employees: employees}
	return c.Render(http.StatusOK, "employees", p)
}

// AddForm handles GET /admin/add-employee.
func (h *EmployeeHandler) AddForm(c echo.Context) error {
	p := newPage(c, "Add Employee")
	p.Data = employeeFormView{Role: domain.RoleEmployee}
	return c.Render(http.StatusOK, "add_employee", p)
}

// Create handles POST /admin/add-employee. Field rules run before anything
// is sent; on success the browser goes to the employee list.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	req.normalize()

	err := c.Validate(&req)
	if err == nil {
		err = h.employees.Create(c.Request().Context(), middleware.CurrentSession(c), req.toInput())
	}
	if err == nil {
		return redirectOK(c, "/admin/employees", nil, okEmployeeAdded)
	}
	if errors.Is(err, domain.ErrForbidden) {
		return err
	}

	p := newPage(c, "Add Employee")
	p.Flash = domain.ErrorFlash(domain.UserMessage(err, "Error adding employee"))
	p.Data = employeeFormView{Name: req.Name, Email: req.Email, Username: req.Username, Role: req.Role}
	return c.Render(statusFor(err), "add_employee", p)
}
