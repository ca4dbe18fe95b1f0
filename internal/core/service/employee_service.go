package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

const formCreateEmployee = "create_employee"

type EmployeeService struct {
	repo   ports.EmployeeRepository
	runner *SubmissionRunner
	log    zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, runner *SubmissionRunner, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, runner: runner, log: log}
}

// Create submits an account form that already passed field validation.
func (s *EmployeeService) Create(ctx context.Context, sess *domain.Session, in ports.CreateEmployeeInput) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if !sess.IsAdmin() {
		return domain.ErrForbidden
	}

	_, err := s.runner.Run(ctx, formCreateEmployee, in.FormID, nil, func(ctx context.Context) error {
		return s.repo.Create(ctx, sess.Token, in.Employee)
	})
	if err == nil {
		s.log.Info().Str("username", in.Employee.Username).Str("role", in.Employee.Role).Msg("employee created")
	}
	return err
}

// List returns every employee with the server-computed hour totals. Absent
// or malformed payloads come back as an empty slice.
func (s *EmployeeService) List(ctx context.Context, sess *domain.Session) ([]domain.Employee, error) {
	if sess == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !sess.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	employees, err := s.repo.List(ctx, sess.Token)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load employees")
		return []domain.Employee{}, err
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}
