package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/openrbac/rbac-admin/pkg/adminsdk"
	"github.com/openrbac/rbac-admin/pkg/httpx"
)

// pathID parses the {id} path segment. Non-numeric ids behave like
// missing records.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body. A malformed or non-object body
// is treated as an empty object, so every field reads as absent and the
// usual "missing required field" validation applies.
func decodeBody[T any](r *http.Request) T {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		var zero T
		return zero
	}
	return v
}

func writeError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, adminsdk.ErrorResponse{Error: message})
}

func writeNotFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

func writeServerError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, "internal server error")
}
