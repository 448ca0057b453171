package rbac_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/openrbac/rbac-admin/pkg/adminsdk"
	"github.com/stretchr/testify/require"
)

func TestUserLifecycle(t *testing.T) {
	t.Parallel()

	client := startService(t, false)
	ctx := context.Background()

	user, err := client.CreateUser(ctx, adminsdk.CreateUserRequest{
		Name:   "jane@company.com",
		Role:   "Admin",
		Email:  "jane@company.com",
		Phone:  "1234567890",
		Branch: "HO",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "Admin", *user.Role)

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := client.CreateUser(ctx, adminsdk.CreateUserRequest{Name: "jane@company.com"})
		requireAPIError(t, err, http.StatusBadRequest, "user exists")
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := client.CreateUser(ctx, adminsdk.CreateUserRequest{})
		requireAPIError(t, err, http.StatusBadRequest, "missing name")
	})

	t.Run("empty optionals stored as absent", func(t *testing.T) {
		bare, err := client.CreateUser(ctx, adminsdk.CreateUserRequest{Name: "bare@company.com"})
		require.NoError(t, err)
		require.Nil(t, bare.Role)
		require.Nil(t, bare.Email)
		require.Nil(t, bare.Phone)
		require.Nil(t, bare.Branch)
	})

	t.Run("explicit null clears a field", func(t *testing.T) {
		updated, err := client.UpdateUser(ctx, user.ID, map[string]any{"phone": nil})
		require.NoError(t, err)
		require.Nil(t, updated.Phone)
		require.Equal(t, "HO", *updated.Branch)
	})

	t.Run("empty name keeps the stored name", func(t *testing.T) {
		updated, err := client.UpdateUser(ctx, user.ID, map[string]any{
			"name":   "",
			"branch": "Branch-9",
		})
		require.NoError(t, err)
		require.Equal(t, "jane@company.com", updated.Name)
		require.Equal(t, "Branch-9", *updated.Branch)
	})

	t.Run("rename conflict", func(t *testing.T) {
		_, err := client.UpdateUser(ctx, user.ID, map[string]any{"name": "bare@company.com"})
		requireAPIError(t, err, http.StatusBadRequest, "name already exists")
	})

	t.Run("delete leaves role assignments stale", func(t *testing.T) {
		role, err := client.CreateRole(ctx, adminsdk.CreateRoleRequest{
			Name:          "Team",
			AssignedUsers: []string{"jane@company.com"},
		})
		require.NoError(t, err)

		require.NoError(t, client.DeleteUser(ctx, user.ID))

		got, err := client.GetRole(ctx, role.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"jane@company.com"}, got.AssignedUsers)

		_, err = client.GetUser(ctx, user.ID)
		require.True(t, adminsdk.IsNotFound(err))
	})
}

func TestUserSearch(t *testing.T) {
	t.Parallel()

	client := startService(t, false)
	ctx := context.Background()

	seed := []adminsdk.CreateUserRequest{
		{Name: "one@company.com", Role: "Admin", Email: "one@company.com", Branch: "Branch-1"},
		{Name: "two@company.com", Role: "Ops User", Email: "two@company.com", Branch: "HO"},
		{Name: "three@company.com", Role: "Branch User", Email: "three@company.com", Branch: "Branch-2"},
	}
	for _, req := range seed {
		_, err := client.CreateUser(ctx, req)
		require.NoError(t, err)
	}

	t.Run("matches branch", func(t *testing.T) {
		users, err := client.ListUsers(ctx, "branch-1")
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Equal(t, "one@company.com", users[0].Name)
	})

	t.Run("matches role case-insensitively", func(t *testing.T) {
		users, err := client.ListUsers(ctx, "ops")
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Equal(t, "two@company.com", users[0].Name)
	})

	t.Run("matches name substring", func(t *testing.T) {
		users, err := client.ListUsers(ctx, "three")
		require.NoError(t, err)
		require.Len(t, users, 1)
	})

	t.Run("no matches", func(t *testing.T) {
		users, err := client.ListUsers(ctx, "nobody")
		require.NoError(t, err)
		require.Empty(t, users)
	})
}
