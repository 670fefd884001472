package api

import (
	"context"
	"net/http"

	"eventhub-client/internal/models"
)

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.JwtResponse, error) {
	var out models.JwtResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/signup", nil, req, nil)
}

// RefreshToken exchanges a refresh token for a fresh token pair.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*models.JwtResponse, error) {
	var out models.JwtResponse
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
