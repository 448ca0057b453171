package adminsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListUsers returns all users, optionally narrowed by a case-insensitive
// substring matched against name, email, role or branch.
func (c *Client) ListUsers(ctx context.Context, query string) ([]User, error) {
	path := "/api/users"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var users []User
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches the full user by id.
func (c *Client) GetUser(ctx context.Context, id int64) (User, error) {
	var user User
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &user)
	return user, err
}

// CreateUser creates a new user.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	var resp UserResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/users", req, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// UpdateUser applies a partial update. Fields are passed as a map because
// the API distinguishes an absent key (no change) from an explicit null
// (overwrite with null); a typed struct cannot express that difference
// when marshalling.
func (c *Client) UpdateUser(ctx context.Context, id int64, fields map[string]any) (User, error) {
	var resp UserResponse
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), fields, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// DeleteUser removes the user permanently.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}
