package apiclient

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/entity"

	"github.com/pkg/errors"
)

// ListUsers lists accounts, optionally only those with role.
func (c *Client) ListUsers(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	path := "/auth/users/"
	if role != "" {
		path += "?" + url.Values{"role": {string(role)}}.Encode()
	}

	var users []*entity.User
	if err := c.getList(ctx, path, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, user entity.NewUser) (*entity.User, error) {
	var created entity.User
	if err := c.PostJSON(ctx, "/auth/users/", user, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) SetUserActive(ctx context.Context, userID int64, active bool) error {
	return c.PostJSON(ctx, userPath(userID, "set_active"), map[string]bool{"active": active}, nil)
}

func (c *Client) SetUserRole(ctx context.Context, userID int64, role entity.Role) error {
	return c.PostJSON(ctx, userPath(userID, "set_role"), map[string]string{"role": string(role)}, nil)
}

func userPath(userID int64, action string) string {
	return "/auth/users/" + strconv.FormatInt(userID, 10) + "/" + action + "/"
}

// getList accepts a bare JSON array or a paginated {"results": [...]} page.
func (c *Client) getList(ctx context.Context, path string, out any) error {
	var raw json.RawMessage
	if err := c.GetJSON(ctx, path, &raw); err != nil {
		return err
	}

	if len(raw) > 0 && raw[0] == '{' {
		var page struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return domainerrors.NewUpstreamError(0, "", errors.Wrap(err, "decode page"))
		}
		raw = page.Results
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return domainerrors.NewUpstreamError(0, "", errors.Wrap(err, "decode list"))
	}

	return nil
}
