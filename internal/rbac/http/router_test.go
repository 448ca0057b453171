package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openrbac/rbac-admin/internal/rbac/service"
	"github.com/openrbac/rbac-admin/internal/rbac/store/drivers/sqlite"
	"github.com/openrbac/rbac-admin/pkg/adminsdk"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	router := NewRouter("test", st, slog.New(slog.DiscardHandler))
	router.RolesService = &service.RolesService{Store: st}
	router.UsersService = &service.UsersService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func doJSON(t *testing.T, method, url string, body string, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestRoleEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	var created adminsdk.RoleResponse
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/roles",
		`{"name":"Admin","privileges":{"POSP":["read","read","update"]},"assigned_users":["admin@company.com"]}`,
		&created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "role created", created.Message)
	require.NotZero(t, created.Role.ID)

	t.Run("duplicate name rejected", func(t *testing.T) {
		var errResp adminsdk.ErrorResponse
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/roles", `{"name":"Admin"}`, &errResp)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "role exists", errResp.Error)
	})

	t.Run("malformed body reads as missing name", func(t *testing.T) {
		var errResp adminsdk.ErrorResponse
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/roles", `{not json`, &errResp)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "missing name", errResp.Error)
	})

	t.Run("list collapses duplicate privilege kinds", func(t *testing.T) {
		var summaries []adminsdk.RoleSummary
		resp := doJSON(t, http.MethodGet, srv.URL+"/api/roles", "", &summaries)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, summaries, 1)
		require.Equal(t, 2, summaries[0].PrivilegesCount)
		require.Equal(t, 1, summaries[0].ModulesCount)
	})

	t.Run("get returns full privileges", func(t *testing.T) {
		var role adminsdk.Role
		resp := doJSON(t, http.MethodGet, srv.URL+"/api/roles/1", "", &role)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, []string{"read", "read", "update"}, role.Privileges["POSP"])
		require.NotEmpty(t, role.CreatedAt)
	})

	t.Run("update replaces present fields wholesale", func(t *testing.T) {
		var updated adminsdk.RoleResponse
		resp := doJSON(t, http.MethodPut, srv.URL+"/api/roles/1", `{"privileges":{}}`, &updated)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "updated", updated.Message)
		require.Empty(t, updated.Role.Privileges)
		require.Equal(t, "Admin", updated.Role.Name)
	})

	t.Run("rename conflict", func(t *testing.T) {
		doJSON(t, http.MethodPost, srv.URL+"/api/roles", `{"name":"Other"}`, nil)

		var errResp adminsdk.ErrorResponse
		resp := doJSON(t, http.MethodPut, srv.URL+"/api/roles/1", `{"name":"Other"}`, &errResp)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "role name conflict", errResp.Error)
	})

	t.Run("non-numeric id behaves as missing", func(t *testing.T) {
		var errResp adminsdk.ErrorResponse
		resp := doJSON(t, http.MethodGet, srv.URL+"/api/roles/abc", "", &errResp)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "not found", errResp.Error)
	})

	t.Run("delete then miss", func(t *testing.T) {
		var msg adminsdk.MessageResponse
		resp := doJSON(t, http.MethodDelete, srv.URL+"/api/roles/1", "", &msg)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "deleted", msg.Message)

		var errResp adminsdk.ErrorResponse
		resp = doJSON(t, http.MethodGet, srv.URL+"/api/roles/1", "", &errResp)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "not found", errResp.Error)
	})
}

func TestRoleDuplicateEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	var created adminsdk.RoleResponse
	doJSON(t, http.MethodPost, srv.URL+"/api/roles",
		`{"name":"Ops","privileges":{"POSP":["read"]}}`, &created)

	var dup adminsdk.RoleResponse
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/roles/1/duplicate", "", &dup)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "duplicated", dup.Message)
	require.Equal(t, "Ops Copy", dup.Role.Name)
	require.Equal(t, created.Role.Privileges, dup.Role.Privileges)

	t.Run("second duplicate conflicts", func(t *testing.T) {
		var errResp adminsdk.ErrorResponse
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/roles/1/duplicate", "", &errResp)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "role exists", errResp.Error)
	})

	t.Run("missing source", func(t *testing.T) {
		var errResp adminsdk.ErrorResponse
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/roles/999/duplicate", "", &errResp)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.Equal(t, "not found", errResp.Error)
	})
}

func TestUserEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	var created adminsdk.UserResponse
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/users",
		`{"name":"jane@company.com","role":"Admin","email":"jane@company.com","phone":"123","branch":"HO"}`,
		&created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "user added", created.Message)
	require.Equal(t, "Admin", *created.User.Role)

	t.Run("duplicate name rejected", func(t *testing.T) {
		var errResp adminsdk.ErrorResponse
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/users", `{"name":"jane@company.com"}`, &errResp)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "user exists", errResp.Error)
	})

	t.Run("empty optionals serialise as null", func(t *testing.T) {
		var resp2 adminsdk.UserResponse
		doJSON(t, http.MethodPost, srv.URL+"/api/users", `{"name":"bare@company.com","role":""}`, &resp2)
		require.Nil(t, resp2.User.Role)
		require.Nil(t, resp2.User.Email)
	})

	t.Run("present null clears a stored field", func(t *testing.T) {
		var updated adminsdk.UserResponse
		resp := doJSON(t, http.MethodPut, srv.URL+"/api/users/1", `{"phone":null}`, &updated)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "updated", updated.Message)
		require.Nil(t, updated.User.Phone)
		require.Equal(t, "HO", *updated.User.Branch)
	})

	t.Run("empty name keeps the stored name", func(t *testing.T) {
		var updated adminsdk.UserResponse
		resp := doJSON(t, http.MethodPut, srv.URL+"/api/users/1", `{"name":"","branch":"Branch-2"}`, &updated)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "jane@company.com", updated.User.Name)
		require.Equal(t, "Branch-2", *updated.User.Branch)
	})

	t.Run("rename conflict", func(t *testing.T) {
		var errResp adminsdk.ErrorResponse
		resp := doJSON(t, http.MethodPut, srv.URL+"/api/users/1", `{"name":"bare@company.com"}`, &errResp)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "name already exists", errResp.Error)
	})

	t.Run("search spans fields", func(t *testing.T) {
		var users []adminsdk.User
		resp := doJSON(t, http.MethodGet, srv.URL+"/api/users?q=branch-2", "", &users)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, users, 1)
		require.Equal(t, "jane@company.com", users[0].Name)
	})

	t.Run("delete", func(t *testing.T) {
		var msg adminsdk.MessageResponse
		resp := doJSON(t, http.MethodDelete, srv.URL+"/api/users/2", "", &msg)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "deleted", msg.Message)

		var errResp adminsdk.ErrorResponse
		resp = doJSON(t, http.MethodDelete, srv.URL+"/api/users/2", "", &errResp)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPages(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	t.Run("root redirects to roles page", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusFound, resp.StatusCode)
		require.Equal(t, "/roles", resp.Header.Get("Location"))
	})

	t.Run("roles page embeds module vocabulary", func(t *testing.T) {
		resp, err := client.Get(srv.URL + "/roles")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get("Content-Type"), "text/html")

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "Manage Roles")
		require.Contains(t, string(body), "bulkupload")
	})
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	t.Run("livez", func(t *testing.T) {
		var health adminsdk.HealthResponse
		resp := doJSON(t, http.MethodGet, srv.URL+"/livez", "", &health)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "test", health.Version)
	})

	t.Run("readyz reports database check", func(t *testing.T) {
		var health adminsdk.HealthResponse
		resp := doJSON(t, http.MethodGet, srv.URL+"/readyz", "", &health)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
	})
}

func TestRequestLoggingMiddleware(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	router := NewRouter("test", st, logger)
	router.RolesService = &service.RolesService{Store: st}
	router.UsersService = &service.UsersService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	resp.Body.Close()

	require.Contains(t, buf.String(), "req_id")
	require.Contains(t, buf.String(), "/livez")
}
