package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openrbac/rbac-admin/internal/rbac/service"
	"github.com/openrbac/rbac-admin/internal/rbac/store"
	"github.com/openrbac/rbac-admin/pkg/httpx"
	"github.com/openrbac/rbac-admin/pkg/slogx"

	_ "github.com/openrbac/rbac-admin/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	RolesService *service.RolesService
	UsersService *service.UsersService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerRoles()
	r.registerUsers()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			RBAC Admin API
//	@version		0.1.0
//	@description	Administration panel API for managing users and roles with per-module privilege sets.
//	@description
//	@description	Role mutations are transactional and role names are unique. User names are unique identifiers chosen by the operator, usually email addresses.
//
//	@contact.name	OpenRBAC Team
//	@contact.url	https://github.com/openrbac/rbac-admin
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerRoles() {
	h := &RolesHandler{RolesService: r.RolesService}

	// Reads are polled by the UI, lenient limit. Writes moderate.
	list := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)
	get := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)
	create := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)
	update := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)
	del := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)
	duplicate := httpx.Chain(http.HandlerFunc(h.HandleDuplicate),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /api/roles", list)
	r.Mux.Handle("GET /api/roles/{id}", get)
	r.Mux.Handle("POST /api/roles", create)
	r.Mux.Handle("PUT /api/roles/{id}", update)
	r.Mux.Handle("DELETE /api/roles/{id}", del)
	r.Mux.Handle("POST /api/roles/{id}/duplicate", duplicate)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UsersService: r.UsersService}

	list := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)
	get := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.RateLimitByIP(httpx.LenientLimit),
	)
	create := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)
	update := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)
	del := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /api/users", list)
	r.Mux.Handle("GET /api/users/{id}", get)
	r.Mux.Handle("POST /api/users", create)
	r.Mux.Handle("PUT /api/users/{id}", update)
	r.Mux.Handle("DELETE /api/users/{id}", del)
}

func (r *Router) registerPages() {
	r.Mux.Handle("GET /{$}",
		httpx.Chain(RootHandler(),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /roles",
		httpx.Chain(PageHandler(),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
