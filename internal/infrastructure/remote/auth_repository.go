package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/worklog/timesheet-dashboard/internal/core/domain"
)

type AuthRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

func (r *AuthRepository) CheckToken(ctx context.Context, token string) (*domain.Session, error) {
	data, err := r.client.do(ctx, call{
		op:          "token_check",
		method:      http.MethodGet,
		path:        "/auth/token-check",
		token:       token,
		skipWarning: true,
		noStore:     true,
	})
	if err != nil {
		if isAuthRejection(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
		}
		return nil, err
	}

	var sess domain.Session
	if len(data) == 0 || json.Unmarshal(data, &sess) != nil {
		return nil, &domain.RequestError{Op: "token_check", StatusCode: http.StatusOK, Message: "malformed identity"}
	}
	return &sess, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginData struct {
	Token string `json:"token"`
}

func (r *AuthRepository) Login(ctx context.Context, username, password string) (string, error) {
	data, err := r.client.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Username: username, Password: password},
	})
	if err != nil {
		return "", err
	}

	var out loginData
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out); err != nil {
			// Some deployments answer {data: "<token>"}.
			_ = json.Unmarshal(data, &out.Token)
		}
	}
	if out.Token == "" {
		return "", &domain.RequestError{Op: "login", StatusCode: http.StatusOK, Message: "no token in response"}
	}
	return out.Token, nil
}
