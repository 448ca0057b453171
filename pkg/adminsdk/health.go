package adminsdk

import (
	"context"
	"net/http"
)

// Livez calls the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &resp)
	return resp, err
}

// Readyz calls the readiness probe. A degraded service returns an
// *APIError with status 503.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &resp)
	return resp, err
}
