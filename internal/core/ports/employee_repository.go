package ports

import (
	"context"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

// EmployeeRepository is the external API's employee surface.
type EmployeeRepository interface {
	List(ctx context.Context, token string) ([]domain.Employee, error)
	Create(ctx context.Context, token string, e domain.NewEmployee) error
}
