package service

import "github.com/worklog/timesheet-dashboard/internal/core/ports"

type nopRecorder struct{}

func (nopRecorder) SessionCheck(string) {}
func (nopRecorder) ValidationRejected(string) {}
func (nopRecorder) Submission(string, string) {}
func (nopRecorder) GuardDecision(string) {}

var _ ports.MetricsRecorder = nopRecorder{}
