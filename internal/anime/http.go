package anime

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmfalves/anidex/internal/platform/middleware"
	requestutil "github.com/dmfalves/anidex/internal/platform/request"
	"github.com/dmfalves/anidex/internal/platform/respond"
	"github.com/dmfalves/anidex/pkg/pagination"
)

// Handler exposes the anime catalog over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the anime catalog routes.
//
// # Endpoints
//   - GET  /            : Public filtered + paginated listing (excludes soft-deleted).
//   - GET  /{id}        : Public single-record fetch.
//   - GET  /active      : All non-deleted records (authenticated).
//   - GET  /deleted     : All soft-deleted records (authenticated).
//   - POST /            : Create (authenticated).
//   - PUT  /{id}        : Update (authenticated).
//   - PUT  /{id}/disable, /{id}/enable : Soft-delete toggle (authenticated).
//   - DELETE /{id}      : Physical removal (authenticated).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listAnimes)
	router.Get("/{id}", handler.getAnime)

	// Authenticated
	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Get("/active", handler.listActive)
		authed.Get("/deleted", handler.listDeleted)
		authed.Post("/", handler.createAnime)
		authed.Put("/{id}", handler.updateAnime)
		authed.Put("/{id}/disable", handler.disableAnime)
		authed.Put("/{id}/enable", handler.enableAnime)
		authed.Delete("/{id}", handler.deleteAnime)
	})

	return router
}

func (handler *Handler) listAnimes(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Director: request.URL.Query().Get("director"),
		Title:    request.URL.Query().Get("title"),
		Summary:  request.URL.Query().Get("summary"),
	}

	animes, total, err := handler.service.List(request.Context(), filter, paginationParams.PageSize, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, animes, pagination.NewMeta(paginationParams.PageIndex, paginationParams.PageSize, total))
}

func (handler *Handler) getAnime(writer http.ResponseWriter, request *http.Request) {
	animeID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	anime, err := handler.service.Get(request.Context(), animeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, anime)
}

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	animes, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, animes)
}

func (handler *Handler) listDeleted(writer http.ResponseWriter, request *http.Request) {
	animes, err := handler.service.ListDeleted(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, animes)
}

func (handler *Handler) createAnime(writer http.ResponseWriter, request *http.Request) {
	var input Anime

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateAnime(writer http.ResponseWriter, request *http.Request) {
	animeID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Anime
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), animeID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) disableAnime(writer http.ResponseWriter, request *http.Request) {
	handler.toggleDeleted(writer, request, true)
}

func (handler *Handler) enableAnime(writer http.ResponseWriter, request *http.Request) {
	handler.toggleDeleted(writer, request, false)
}

func (handler *Handler) toggleDeleted(writer http.ResponseWriter, request *http.Request, deleted bool) {
	animeID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if deleted {
		err = handler.service.Disable(request.Context(), animeID)
	} else {
		err = handler.service.Enable(request.Context(), animeID)
	}

	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteAnime(writer http.ResponseWriter, request *http.Request) {
	animeID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), animeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
