package handlers

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"starmap-server/internal/savegame"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/response"
	"starmap-server/internal/universe"
)

type WorldHandler struct {
	service *universe.Service
}

func NewWorldHandler(service *universe.Service) *WorldHandler {
	return &WorldHandler{service: service}
}

// CreateWorld handles POST /api/worlds. An empty body generates a world from
// a fresh seed with the configured params; a partial params object overrides
// only the fields it names.
func (h *WorldHandler) CreateWorld(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "create_world")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	// Overrides land on a copy of the configured params so unsent fields keep
	// their defaults.
	params := h.service.Params()
	req := universe.GenerateRequest{Params: &params}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !stderrors.Is(err, io.EOF) {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}

	rec, err := h.service.Generate(ctx, req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, rec)
}

func (h *WorldHandler) GetWorlds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_worlds")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	worlds, err := h.service.List(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if worlds == nil {
		worlds = []universe.WorldRecord{}
	}

	response.Success(w, http.StatusOK, worlds)
}

func (h *WorldHandler) GetWorld(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_world")

	id, err := worldID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	view, err := h.service.Get(ctx, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, view)
}

func (h *WorldHandler) GetWorldMap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_world_map")

	id, err := worldID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	view, err := h.service.Map(ctx, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, view)
}

// DownloadSave streams the gzip-compressed save of a world
func (h *WorldHandler) DownloadSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "download_save")

	id, err := worldID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	data, err := h.service.Export(ctx, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := response.Attachment(w, "application/gzip", id.String()+savegame.Extension, data); err != nil {
		logger.Warn("Failed to write save", "world_id", id, "error", err)
	}
}

func (h *WorldHandler) DeleteWorld(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "delete_world")

	id, err := worldID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, map[string]string{"message": "world deleted"})
}

func worldID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	if raw == "" {
		return uuid.Nil, errors.Validation("world ID is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.WrapValidation("invalid world ID", err)
	}
	return id, nil
}
