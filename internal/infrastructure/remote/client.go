package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/worklog/timesheet-dashboard/internal/api/metrics"
	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

const (
	defaultTimeout = 8 * time.Second
	maxBodyBytes   = 1 << 20

	headerSkipBrowserWarning = "ngrok-skip-browser-warning"
)

// Config captures the settings for reaching the external API.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client performs single-attempt JSON calls against the external API. The
// token travels as the raw Authorization value, without a scheme.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient validates the base URL and builds a Client. A default timeout is
// applied when none is provided.
func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("remote: invalid base url %q", cfg.BaseURL)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    hc,
		log:     log,
	}, nil
}

// call describes one request.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	token  string
	body   any
	// skipWarning adds the ngrok-skip-browser-warning header.
	skipWarning bool
	noStore     bool
}

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// do sends c and returns the raw data member of a 2xx response.
func (cl *Client) do(ctx context.Context, c call) (json.RawMessage, error) {
	endpoint := cl.baseURL + c.path
	if len(c.query) > 0 {
		endpoint += "?" + c.query.Encode()
	}

	var body io.Reader
	if c.body != nil {
		b, err := json.Marshal(c.body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", c.op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.op, err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Accept", "application/json")
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.skipWarning {
		req.Header.Set(headerSkipBrowserWarning, "true")
	}
	if c.noStore {
		req.Header.Set("Cache-Control", "no-store")
	}

	start := time.Now()
	resp, err := cl.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(c.op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(c.op, "transport_error").Inc()
		return nil, &domain.RequestError{Op: c.op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(c.op, "transport_error").Inc()
		return nil, &domain.RequestError{Op: c.op, StatusCode: resp.StatusCode, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(c.op, "http_error").Inc()
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		return nil, &domain.RequestError{Op: c.op, StatusCode: resp.StatusCode, Message: msg}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(c.op, "ok").Inc()
	cl.log.Debug().
		Str("op", c.op).
		Str("method", c.method).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("upstream call")

	if decodeErr != nil {
		// 2xx with an empty or non-JSON body carries no data.
		return nil, nil
	}
	return env.Data, nil
}

// Reachable reports whether the API host answers HTTP at all; any status
// counts as reachable.
func (cl *Client) Reachable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, cl.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := cl.http.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// decodeList extracts data[field] as a JSON array into dst. A missing data
// member, a missing field, or a non-array value all decode as empty.
func decodeList(data json.RawMessage, field string, dst any) bool {
	if len(data) == 0 {
		return false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return false
	}
	list, ok := obj[field]
	if !ok || len(list) == 0 || list[0] != '[' {
		return false
	}
	return json.Unmarshal(list, dst) == nil
}

func isAuthRejection(err error) bool {
	var re *domain.RequestError
	if !errors.As(err, &re) {
		return false
	}
	return re.StatusCode == http.StatusUnauthorized || re.StatusCode == http.StatusForbidden
}
