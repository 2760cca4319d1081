package apiclient

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// Login exchanges credentials for a token pair and role.
func (c *Client) Login(ctx context.Context, credentials entity.Credentials) (*entity.LoginResult, error) {
	var result entity.LoginResult
	if err := c.PostJSON(ctx, "/auth/login/", credentials, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

type refreshResponse struct {
	Access string `json:"access"`
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var resp refreshResponse
	if err := c.PostJSON(ctx, "/auth/refresh/", map[string]string{"refresh": refreshToken}, &resp); err != nil {
		return "", err
	}

	return resp.Access, nil
}
