package http

import (
	"errors"
	"net/http"

	"github.com/openrbac/rbac-admin/internal/rbac/service"
	"github.com/openrbac/rbac-admin/internal/rbac/store"
	"github.com/openrbac/rbac-admin/pkg/adminsdk"
	"github.com/openrbac/rbac-admin/pkg/httpx"
	"github.com/openrbac/rbac-admin/pkg/slogx"
)

type UsersHandler struct {
	UsersService *service.UsersService
}

// updateUserRequest is the server-side shape of PUT /api/users/{id}.
// OptString keeps the distinction between a key that was never sent and
// one sent as null, which this endpoint is contractually sensitive to.
type updateUserRequest struct {
	Name   httpx.OptString `json:"name"`
	Role   httpx.OptString `json:"role"`
	Email  httpx.OptString `json:"email"`
	Phone  httpx.OptString `json:"phone"`
	Branch httpx.OptString `json:"branch"`
}

// HandleList godoc
//
//	@Summary		List users
//	@Description	Returns all users ordered by id. The optional q parameter matches case-insensitively as a substring of name, email, role or branch.
//	@Tags			Users
//	@Produce		json
//	@Param			q	query		string	false	"Substring filter"
//	@Success		200	{array}		adminsdk.User
//	@Failure		500	{object}	adminsdk.ErrorResponse
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UsersService.List(ctx, r.URL.Query().Get("q"))
	if err != nil {
		log.Error("failed to list users", "error", err)
		writeServerError(w)
		return
	}

	out := make([]adminsdk.User, len(users))
	for i, u := range users {
		out[i] = mapUser(u)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get a user
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	adminsdk.User
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	user, err := h.UsersService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w)
			return
		}
		log.Error("failed to get user", "user_id", id, "error", err)
		writeServerError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapUser(user))
}

// HandleCreate godoc
//
//	@Summary		Create a user
//	@Description	Creates a user. The name must be unique; empty optional fields are stored as absent rather than as empty strings.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		adminsdk.CreateUserRequest	true	"User to create"
//	@Success		200		{object}	adminsdk.UserResponse
//	@Failure		400		{object}	adminsdk.ErrorResponse	"missing name / user exists"
//	@Router			/api/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	req := decodeBody[adminsdk.CreateUserRequest](r)

	user, err := h.UsersService.Create(ctx, req.Name, req.Role, req.Email, req.Phone, req.Branch)
	switch {
	case errors.Is(err, service.ErrMissingName):
		writeError(w, http.StatusBadRequest, "missing name")
		return
	case errors.Is(err, service.ErrUserExists):
		writeError(w, http.StatusBadRequest, "user exists")
		return
	case err != nil:
		log.Error("failed to create user", "error", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.UserResponse{
		Message: "user added",
		User:    mapUser(user),
	})
}

// HandleUpdate godoc
//
//	@Summary		Update a user
//	@Description	Only fields present in the body are considered. A present role/email/phone/branch overwrites the stored value verbatim, null included; a present but empty name keeps the existing name.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int		true	"User id"
//	@Param			body	body		object	true	"Fields to change"
//	@Success		200		{object}	adminsdk.UserResponse
//	@Failure		400		{object}	adminsdk.ErrorResponse	"name already exists"
//	@Failure		404		{object}	adminsdk.ErrorResponse
//	@Router			/api/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	req := decodeBody[updateUserRequest](r)
	upd := service.UserUpdate{
		Role:   service.OptField{Set: req.Role.Set, Value: req.Role.Value},
		Email:  service.OptField{Set: req.Email.Set, Value: req.Email.Value},
		Phone:  service.OptField{Set: req.Phone.Set, Value: req.Phone.Value},
		Branch: service.OptField{Set: req.Branch.Set, Value: req.Branch.Value},
	}
	if req.Name.Set {
		// A null name reads as empty, which keeps the stored name.
		name := req.Name.String()
		upd.Name = &name
	}

	user, err := h.UsersService.Update(ctx, id, upd)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeNotFound(w)
		return
	case errors.Is(err, service.ErrUserNameConflict):
		writeError(w, http.StatusBadRequest, "name already exists")
		return
	case err != nil:
		log.Error("failed to update user", "user_id", id, "error", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.UserResponse{
		Message: "updated",
		User:    mapUser(user),
	})
}

// HandleDelete godoc
//
//	@Summary		Delete a user
//	@Description	Removes the user permanently. Roles listing this user in assigned_users keep the stale entry.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int	true	"User id"
//	@Success		200	{object}	adminsdk.MessageResponse
//	@Failure		404	{object}	adminsdk.ErrorResponse
//	@Router			/api/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	err := h.UsersService.Delete(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeNotFound(w)
		return
	case err != nil:
		log.Error("failed to delete user", "user_id", id, "error", err)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.MessageResponse{Message: "deleted"})
}
