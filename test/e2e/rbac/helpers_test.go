package rbac_test

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/openrbac/rbac-admin/internal/rbac/app"
	"github.com/openrbac/rbac-admin/pkg/adminsdk"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for admin panel end-to-end tests. Each test gets its own
 * application wired to a throwaway on-disk database and served through an
 * in-process httptest server, so scenarios exercise the full stack from
 * SDK client through router, services, and the sqlite store.
 */

// startService boots a full application against a temp database and
// returns an SDK client pointed at it.
func startService(t *testing.T, seed bool) *adminsdk.Client {
	t.Helper()

	cfg := app.Config{
		DatabaseFile:        filepath.Join(t.TempDir(), "rbac.db"),
		SeedDefaults:        seed,
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                0,
		ShutdownGracePeriod: 0,
	}

	application, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	return adminsdk.New(srv.URL)
}

func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*adminsdk.APIError)
	require.True(t, ok, "expected *adminsdk.APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, message, apiErr.Message)
}
