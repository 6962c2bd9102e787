package anime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmfalves/anidex/internal/audit"
	"github.com/dmfalves/anidex/internal/platform/validate"
)

// Service implements the anime catalog use cases.
//
// Every mutating operation appends exactly one audit entry on success.
type Service struct {
	repo     Repository
	recorder audit.Recorder
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, recorder audit.Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		logger:   logger,
	}
}

// List returns a filtered, paginated view of non-deleted records.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Anime, int, error) {
	return service.repo.ListAnimes(context, filter, limit, offset)
}

// ListActive returns every record with the soft-delete flag unset.
func (service *Service) ListActive(context context.Context) ([]*Anime, error) {
	return service.repo.ListByDeleted(context, false)
}

// ListDeleted returns every record with the soft-delete flag set.
func (service *Service) ListDeleted(context context.Context) ([]*Anime, error) {
	return service.repo.ListByDeleted(context, true)
}

// Get returns a single record by ID.
func (service *Service) Get(context context.Context, id int) (*Anime, error) {
	return service.repo.GetAnime(context, id)
}

// Create validates and persists a new record.
func (service *Service) Create(context context.Context, anime *Anime) error {
	if err := validateAnime(anime); err != nil {
		return err
	}

	anime.IsDeleted = false
	if err := service.repo.CreateAnime(context, anime); err != nil {
		return err
	}

	service.recorder.Record(context,
		fmt.Sprintf("Anime %q #%d created.", anime.Title, anime.ID),
		audit.LevelInfo, audit.ActionCreate,
	)
	service.logger.InfoContext(context, "anime_created", slog.Int("anime_id", anime.ID), slog.String("title", anime.Title))
	return nil
}

// Update overwrites the mutable fields of an existing record.
//
// A mismatch between the path ID and the body ID is rejected before any
// store call, so a failed update can never partially mutate.
func (service *Service) Update(context context.Context, id int, anime *Anime) error {
	validator := &validate.Validator{}
	validator.Custom(FieldID, anime.ID != 0 && anime.ID != id, "ID does not match the URL parameter")

	if err := validator.Err(); err != nil {
		return err
	}
	anime.ID = id

	if err := validateAnime(anime); err != nil {
		return err
	}

	if err := service.repo.UpdateAnime(context, anime); err != nil {
		return err
	}

	service.recorder.Record(context,
		fmt.Sprintf("Anime %q #%d updated.", anime.Title, anime.ID),
		audit.LevelInfo, audit.ActionUpdate,
	)
	service.logger.InfoContext(context, "anime_updated", slog.Int("anime_id", anime.ID))
	return nil
}

// Disable sets the soft-delete flag. The record stays in storage.
func (service *Service) Disable(context context.Context, id int) error {
	if err := service.repo.SetDeleted(context, id, true); err != nil {
		return err
	}

	service.recorder.Record(context,
		fmt.Sprintf("Anime #%d disabled.", id),
		audit.LevelInfo, audit.ActionDisable,
	)
	service.logger.InfoContext(context, "anime_disabled", slog.Int("anime_id", id))
	return nil
}

// Enable clears the soft-delete flag.
func (service *Service) Enable(context context.Context, id int) error {
	if err := service.repo.SetDeleted(context, id, false); err != nil {
		return err
	}

	service.recorder.Record(context,
		fmt.Sprintf("Anime #%d enabled.", id),
		audit.LevelInfo, audit.ActionEnable,
	)
	service.logger.InfoContext(context, "anime_enabled", slog.Int("anime_id", id))
	return nil
}

// Delete physically removes a record. Distinct from Disable on purpose.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.DeleteAnime(context, id); err != nil {
		return err
	}

	service.recorder.Record(context,
		fmt.Sprintf("Anime #%d deleted.", id),
		audit.LevelInfo, audit.ActionDelete,
	)
	service.logger.WarnContext(context, "anime_deleted", slog.Int("anime_id", id))
	return nil
}

// validateAnime enforces the create/update invariants: title and director
// must be non-empty.
func validateAnime(anime *Anime) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, anime.Title).MaxLen(FieldTitle, anime.Title, 200).
		Required(FieldDirector, anime.Director).MaxLen(FieldDirector, anime.Director, 200).
		MaxLen(FieldSummary, anime.Summary, 2000)

	return validator.Err()
}
