package handler

import (
	"strings"
	"time"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

type signInForm struct {
	Username string `form:"username" validate:"required" label:"Username"`
	Password string `form:"password" validate:"required" label:"Password"`
}

type timeEntryForm struct {
	FormID      string `form:"form_id"`
	Start       string `form:"start_time" validate:"required" label:"Start time"`
	End         string `form:"end_time" validate:"required" label:"End time"`
	Description string `form:"description" validate:"required" label:"Description"`
	TZ          string `form:"tz"`
}

func (f *timeEntryForm) normalize() {
	f.Start = strings.TrimSpace(f.Start)
	f.End = strings.TrimSpace(f.End)
	f.Description = strings.TrimSpace(f.Description)
}

func (f timeEntryForm) toInput(def *time.Location) ports.TimeEntryInput {
	return ports.TimeEntryInput{
		FormID:      f.FormID,
		Start:       f.Start,
		End:         f.End,
		Description: f.Description,
		Location:    userLocation(f.TZ, def),
	}
}

// Username and Password come first so their length rules are reported
// before the other fields.
type employeeForm struct {
	FormID   string `form:"form_id"`
	Username string `form:"username" validate:"required,min=6" label:"Username"`
	Password string `form:"password" validate:"required,min=6" label:"Password"`
	Name     string `form:"name" validate:"required" label:"Name"`
	Email    string `form:"email" validate:"required,email" label:"Email"`
	Role     string `form:"role" validate:"oneof=employee admin" label:"Role"`
}

// normalize leaves Username as typed; its length rule counts every character.
func (f *employeeForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Role = strings.TrimSpace(f.Role)
	if f.Role == "" {
		f.Role = domain.RoleEmployee
	}
}

func (f employeeForm) toInput() ports.CreateEmployeeInput {
	return ports.CreateEmployeeInput{
		FormID: f.FormID,
		Employee: domain.NewEmployee{
			Name:     f.Name,
			Email:    f.Email,
			Username: f.Username,
			Password: f.Password,
			Role:     f.Role,
		},
	}
}

type historyQuery struct {
	Date string `validate:"omitempty,datetime=2006-01-02" label:"Date"`
}

// View models.

type signInView struct {
	Username string
}

type timeEntryView struct {
	Start       string
	End         string
	Description string
}

type historyView struct {
	Date    string
	Entries []domain.TimeEntry
	Edit    *editView
	Delete  *deleteView
}

type editView struct {
	ID          string
	FormID      string
	Start       string
	End         string
	Description string
	Flash       *domain.Flash
}

type deleteView struct {
	ID     string
	FormID string
}

type employeesView struct {
	Employees []domain.Employee
}

type employeeFormView struct {
	Name     string
	Email    string
	Username string
	Role     string
}
