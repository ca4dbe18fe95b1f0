package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
	"github.com/worklog/timesheet-dashboard/internal/core/ports"
)

type TimeEntryRepository struct {
	client *Client
}

func NewTimeEntryRepository(client *Client) *TimeEntryRepository {
	return &TimeEntryRepository{client: client}
}

type wireTimeEntry struct {
	ID          string `json:"_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
	EmployeeID  string `json:"employeeId"`
}

func (r *TimeEntryRepository) List(ctx context.Context, token, employeeID, date string) ([]domain.TimeEntry, error) {
	q := url.Values{}
	q.Set("employeeId", employeeID)
	if date != "" {
		q.Set("date", date)
	}

	data, err := r.client.do(ctx, call{
		op:          "list_time_entries",
		method:      http.MethodGet,
		path:        "/time-entry",
		query:       q,
		token:       token,
		skipWarning: true,
	})
	if err != nil {
		return nil, err
	}

	var wire []wireTimeEntry
	if !decodeList(data, "timeEntryList", &wire) {
		return []domain.TimeEntry{}, nil
	}

	out := make([]domain.TimeEntry, 0, len(wire))
	for _, w := range wire {
		start, err := domain.ParseInstant(w.StartTime)
		if err != nil {
			r.client.log.Warn().Err(err).Str("id", w.ID).Msg("skipping time entry with bad start")
			continue
		}
		end, err := domain.ParseInstant(w.EndTime)
		if err != nil {
			r.client.log.Warn().Err(err).Str("id", w.ID).Msg("skipping time entry with bad end")
			continue
		}
		if w.EmployeeID == "" {
			w.EmployeeID = employeeID
		}
		out = append(out, domain.TimeEntry{
			ID:          w.ID,
			Start:       start,
			End:         end,
			Description: w.Description,
			EmployeeID:  w.EmployeeID,
		})
	}
	return out, nil
}

func (r *TimeEntryRepository) Create(ctx context.Context, token string, p ports.TimeEntryPayload) error {
	_, err := r.client.do(ctx, call{
		op:     "create_time_entry",
		method: http.MethodPost,
		path:   "/time-entry",
		token:  token,
		body:   p,
	})
	return err
}

func (r *TimeEntryRepository) Update(ctx context.Context, token, id string, p ports.TimeEntryPayload) error {
	p.EmployeeID = ""
	_, err := r.client.do(ctx, call{
		op:          "update_time_entry",
		method:      http.MethodPut,
		path:        "/time-entry",
		query:       url.Values{"id": {id}},
		token:       token,
		body:        p,
		skipWarning: true,
	})
	return err
}

func (r *TimeEntryRepository) Delete(ctx context.Context, token, id string) error {
	_, err := r.client.do(ctx, call{
		op:          "delete_time_entry",
		method:      http.MethodDelete,
		path:        "/time-entry",
		query:       url.Values{"id": {id}},
		token:       token,
		skipWarning: true,
	})
	return err
}
