package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

type stubEmployeeRepo struct {
	employees []domain.Employee
	listErr   error
	createErr error
	created   []domain.NewEmployee
}

func (r *stubEmployeeRepo) List(context.Context, string) ([]domain.Employee, error) {
	return r.employees, r.listErr
}

func (r *stubEmployeeRepo) Create(_ context.Context, _ string, e domain.NewEmployee) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, e)
	return nil
}

func adminSession() *domain.Session {
	return &domain.Session{UserID: "u0", Role: domain.RoleAdmin, Token: "admin-tok"}
}

func newEmployeeSvc(repo *stubEmployeeRepo) *EmployeeService {
	return NewEmployeeService(repo, NewSubmissionRunner(newStubGuard(), time.Minute, zerolog.Nop()), zerolog.Nop())
}

func TestEmployeeService_Create(t *testing.T) {
	repo := &stubEmployeeRepo{}
	svc := newEmployeeSvc(repo)

	in := ports.CreateEmployeeInput{FormID: "f1", Employee: domain.NewEmployee{
		Name: "Bob", Email: "bob@example.com", Username: "bobby1", Password: "secret1", Role: domain.RoleEmployee,
	}}
	if err := svc.Create(context.Background(), adminSession(), in); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(repo.created) != 1 || repo.created[0].Username != "bobby1" {
		t.Fatalf("unexpected creates: %+v", repo.created)
	}
}

func TestEmployeeService_Create_ForbiddenForEmployees(t *testing.T) {
	repo := &stubEmployeeRepo{}
	svc := newEmployeeSvc(repo)

	err := svc.Create(context.Background(), employeeSession(), ports.CreateEmployeeInput{})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("forbidden create must not reach the API")
	}
}

func TestEmployeeService_Create_ServerMessage(t *testing.T) {
	repo := &stubEmployeeRepo{createErr: &domain.RequestError{Op: "create_employee", StatusCode: 409, Message: "Username already taken"}}
	svc := newEmployeeSvc(repo)

	err := svc.Create(context.Background(), adminSession(), ports.CreateEmployeeInput{})
	if got := domain.UserMessage(err, "Error adding employee"); got != "Username already taken" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestEmployeeService_List(t *testing.T) {
	repo := &stubEmployeeRepo{employees: []domain.Employee{{ID: "e1", Name: "Ann", TotalHours: 12.5}}}
	svc := newEmployeeSvc(repo)

	got, err := svc.List(context.Background(), adminSession())
	if err != nil || len(got) != 1 || got[0].TotalHours != 12.5 {
		t.Fatalf("unexpected result: %+v, %v", got, err)
	}
}

func TestEmployeeService_List_FailureIsEmpty(t *testing.T) {
	repo := &stubEmployeeRepo{employees: []domain.Employee{{ID: "stale"}}, listErr: errors.New("boom")}
	svc := newEmployeeSvc(repo)

	got, err := svc.List(context.Background(), adminSession())
	if err == nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty list and error, got %+v, %v", got, err)
	}
}

func TestEmployeeService_List_NilIsEmpty(t *testing.T) {
	svc := newEmployeeSvc(&stubEmployeeRepo{})

	got, err := svc.List(context.Background(), adminSession())
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %+v, %v", got, err)
	}
}
