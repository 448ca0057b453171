package http

import (
	"errors"
	"net/http"

	"github.com/openrbac/rbac-admin/internal/rbac/domain"
	"github.com/openrbac/rbac-admin/internal/rbac/service"
	"github.com/openrbac/rbac-admin/internal/rbac/store"
	"github.com/openrbac/rbac-admin/pkg/adminsdk"
	"github.com/openrbac/rbac-admin/pkg/httpx"
	"github.com/openrbac/rbac-admin/pkg/slogx"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// HandleList godoc
//
//	@Summary		List roles
//	@Description	Returns summaries of all roles ordered by id. The optional q parameter narrows to roles whose name contains it, case-insensitively.
//	@Tags			Roles
//	@Produce		json
//	@Param			q	query		string	false	"Name substring filter"
//	@Success		200	{array}		adminsdk.RoleSummary
//	@Failure		500	{object}	adminsdk.ErrorResponse
//	@Router			/api/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	summaries, err := h.RolesService.List(ctx, r.URL.Query().Get("q"))
	if err != nil {
		log.Error("failed to list roles", "error", err)
		writeServerError(w)
		return
	}

	out := make([]adminsdk.RoleSummary, len(summaries))
	for i, s := range summaries {
		out[i] = mapRoleSummary(s)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get a role
//	@Description	Returns the full role, including its privileges mapping.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		int	true	"Role id"
//	@Success		200	{object}	adminsdk.Role
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/roles/{id} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	role, err := h.RolesService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w)
			return
		}
		log.Error("failed to get role", "role_id", id, "error", err)
		writeServerError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapRole(role))
}

// HandleCreate godoc
//
//	@Summary		Create a role
//	@Description	Creates a role with the given privileges and assigned users, both defaulting to empty.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			body	body		adminsdk.CreateRoleRequest	true	"Role to create"
//	@Success		200		{object}	adminsdk.RoleResponse
//	@Failure		400		{object}	adminsdk.ErrorResponse	"missing name / role exists"
//	@Router			/api/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	req := decodeBody[adminsdk.CreateRoleRequest](r)

	role, err := h.RolesService.Create(ctx, req.Name, domain.PrivilegeMap(req.Privileges), req.AssignedUsers)
	switch {
	case errors.Is(err, service.ErrMissingName):
		writeError(w, http.StatusBadRequest, "missing name")
		return
	case errors.Is(err, service.ErrRoleExists):
		writeError(w, http.StatusBadRequest, "role exists")
		return
	case err != nil:
		log.Error("failed to create role", "error", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.RoleResponse{
		Message: "role created",
		Role:    mapRole(role),
	})
}

// HandleUpdate godoc
//
//	@Summary		Update a role
//	@Description	Replaces the provided fields wholesale. Omitted fields are left unchanged; an explicitly empty privileges mapping or assigned_users list clears the stored value.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Role id"
//	@Param			body	body		adminsdk.UpdateRoleRequest	true	"Fields to replace"
//	@Success		200		{object}	adminsdk.RoleResponse
//	@Failure		400		{object}	adminsdk.ErrorResponse	"role name conflict"
//	@Failure		404		{object}	adminsdk.ErrorResponse
//	@Router			/api/roles/{id} [put].
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	req := decodeBody[adminsdk.UpdateRoleRequest](r)
	upd := service.RoleUpdate{
		Name:          req.Name,
		AssignedUsers: req.AssignedUsers,
	}
	if req.Privileges != nil {
		privs := domain.PrivilegeMap(*req.Privileges)
		upd.Privileges = &privs
	}

	role, err := h.RolesService.Update(ctx, id, upd)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeNotFound(w)
		return
	case errors.Is(err, service.ErrRoleNameConflict):
		writeError(w, http.StatusBadRequest, "role name conflict")
		return
	case err != nil:
		log.Error("failed to update role", "role_id", id, "error", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.RoleResponse{
		Message: "updated",
		Role:    mapRole(role),
	})
}

// HandleDelete godoc
//
//	@Summary		Delete a role
//	@Description	Removes the role permanently. Users referencing this role by name keep the dangling reference.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		int	true	"Role id"
//	@Success		200	{object}	adminsdk.MessageResponse
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/roles/{id} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	err := h.RolesService.Delete(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeNotFound(w)
		return
	case err != nil:
		log.Error("failed to delete role", "role_id", id, "error", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.MessageResponse{Message: "deleted"})
}

// HandleDuplicate godoc
//
//	@Summary		Duplicate a role
//	@Description	Clones the role's privileges and assigned users under the name "<original> Copy" with a fresh id. Fails when that name is already taken.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		int	true	"Source role id"
//	@Success		200	{object}	adminsdk.RoleResponse
//	@Failure		400	{object}	adminsdk.ErrorResponse	"role exists"
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/roles/{id}/duplicate [post].
func (h *RolesHandler) HandleDuplicate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	role, err := h.RolesService.Duplicate(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeNotFound(w)
		return
	case errors.Is(err, service.ErrRoleExists):
		writeError(w, http.StatusBadRequest, "role exists")
		return
	case err != nil:
		log.Error("failed to duplicate role", "role_id", id, "error", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.RoleResponse{
		Message: "duplicated",
		Role:    mapRole(role),
	})
}
