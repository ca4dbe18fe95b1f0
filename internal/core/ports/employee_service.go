package ports

import (
	"context"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

// CreateEmployeeInput carries an already validated account form.
type CreateEmployeeInput struct {
	FormID   string
	Employee domain.NewEmployee
}

type EmployeeService interface {
	Create(ctx context.Context, s *domain.Session, in CreateEmployeeInput) error
	List(ctx context.Context, s *domain.Session) ([]domain.Employee, error)
}
