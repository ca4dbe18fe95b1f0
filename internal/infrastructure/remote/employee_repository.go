package remote

import (
	"context"
	"net/http"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

type EmployeeRepository struct {
	client *Client
}

func NewEmployeeRepository(client *Client) *EmployeeRepository {
	return &EmployeeRepository{client: client}
}

func (r *EmployeeRepository) List(ctx context.Context, token string) ([]domain.Employee, error) {
	data, err := r.client.do(ctx, call{
		op:          "list_employees",
		method:      http.MethodGet,
		path:        "/employee",
		token:       token,
		skipWarning: true,
	})
	if err != nil {
		return nil, err
	}

	var employees []domain.Employee
	if !decodeList(data, "employeeList", &employees) {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, token string, e domain.NewEmployee) error {
	_, err := r.client.do(ctx, call{
		op:     "create_employee",
		method: http.MethodPost,
		path:   "/employee",
		token:  token,
		body:   e,
	})
	return err
}
