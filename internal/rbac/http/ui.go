package http

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/openrbac/rbac-admin/internal/rbac/domain"
	"github.com/openrbac/rbac-admin/pkg/slogx"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Modules       []string
	PossiblePrivs []string
}

// RootHandler redirects the bare root to the admin page.
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/roles", http.StatusFound)
	}
}

// PageHandler serves the single-page admin UI. The module and privilege
// vocabularies are rendered into the page so the checkbox grid matches
// what the server seeds.
func PageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := pageData{
			Modules:       domain.DefaultModules,
			PossiblePrivs: domain.PrivilegeKinds,
		}
		if err := pageTemplate.Execute(w, data); err != nil {
			slogx.FromContext(r.Context()).Error("failed to render admin page", "error", err)
		}
	}
}
