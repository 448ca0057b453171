package adminsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListRoles returns role summaries, optionally narrowed by a
// case-insensitive name substring.
func (c *Client) ListRoles(ctx context.Context, query string) ([]RoleSummary, error) {
	path := "/api/roles"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var summaries []RoleSummary
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetRole fetches the full role by id.
func (c *Client) GetRole(ctx context.Context, id int64) (Role, error) {
	var role Role
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/roles/%d", id), nil, &role)
	return role, err
}

// CreateRole creates a new role.
func (c *Client) CreateRole(ctx context.Context, req CreateRoleRequest) (Role, error) {
	var resp RoleResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/roles", req, &resp); err != nil {
		return Role{}, err
	}
	return resp.Role, nil
}

// UpdateRole applies a partial update; omitted fields are unchanged.
func (c *Client) UpdateRole(ctx context.Context, id int64, req UpdateRoleRequest) (Role, error) {
	var resp RoleResponse
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/roles/%d", id), req, &resp); err != nil {
		return Role{}, err
	}
	return resp.Role, nil
}

// DeleteRole removes the role permanently.
func (c *Client) DeleteRole(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/roles/%d", id), nil, nil)
}

// DuplicateRole clones the role under the name "<original> Copy".
func (c *Client) DuplicateRole(ctx context.Context, id int64) (Role, error) {
	var resp RoleResponse
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/api/roles/%d/duplicate", id), nil, &resp)
	if err != nil {
		return Role{}, err
	}
	return resp.Role, nil
}
