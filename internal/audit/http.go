package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmfalves/anidex/internal/platform/middleware"
	"github.com/dmfalves/anidex/internal/platform/respond"
	"github.com/dmfalves/anidex/internal/platform/sec"
)

// Handler exposes the audit trail over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for the audit log endpoints.
//
// The entire trail is operational data: admin only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.With(middleware.RequireRole(sec.RoleAdmin)).Get("/", handler.listEntries)

	return router
}

func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}
