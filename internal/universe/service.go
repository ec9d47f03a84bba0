package universe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"starmap-server/internal/savegame"
	"starmap-server/internal/shared/config"
	"starmap-server/internal/shared/random"
	"starmap-server/internal/world"
)

type Service struct {
	store   Store
	cache   Cache
	params  world.Params
	saveDir string
	logger  *slog.Logger
}

// NewService wires generation to persistence. A nil cache disables caching
// and an empty saveDir disables writing save files to disk.
func NewService(store Store, cache Cache, params world.Params, saveDir string, logger *slog.Logger) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &Service{
		store:   store,
		cache:   cache,
		params:  params,
		saveDir: saveDir,
		logger:  logger,
	}
}

// ParamsFromConfig maps the configured ranges onto the generator tree
func ParamsFromConfig(cfg config.GenerationConfig) world.Params {
	params := world.DefaultParams()
	params.Galaxy.Constellations = cfg.Constellations
	params.Galaxy.ConnectionRadius = cfg.ConnectionRadius
	params.Galaxy.Constellation.Systems = cfg.Systems
	params.Galaxy.Constellation.System.Planets = cfg.Planets
	return params
}

// Params returns the defaults applied to requests without their own params
func (s *Service) Params() world.Params {
	return s.params
}

// Generate builds a world, stores its compressed save and returns its record
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*WorldRecord, error) {
	logger := s.logger.With("component", "world_service", "operation", "generate")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := s.params
	if req.Params != nil {
		params = *req.Params
	}

	var src *random.Source
	if req.Seed != nil {
		src = random.New(*req.Seed)
	} else {
		src = random.NewUnseeded()
	}
	logger = logger.With("seed", src.Seed())

	w, err := world.Generate(src, req.Name, params)
	if err != nil {
		return nil, err
	}

	packed, err := savegame.Pack(w)
	if err != nil {
		return nil, err
	}

	rec := NewWorldRecord(w)
	if err := s.store.Create(ctx, rec, packed); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, rec.ID, packed); err != nil {
		logger.Warn("Failed to cache save", "world_id", rec.ID, "error", err)
	}
	if err := s.writeSaveFile(w); err != nil {
		logger.Warn("Failed to write save file", "world_id", rec.ID, "error", err)
	}

	logger.Info("World generated",
		"world_id", rec.ID,
		"name", rec.Name,
		"constellations", rec.ConstellationCount,
		"systems", rec.SystemCount,
		"planets", rec.PlanetCount,
		"connections", rec.ConnectionCount)

	return rec, nil
}

// writeSaveFile mirrors a stored world into saveDir. The database stays the
// source of truth, so a failed write is not fatal.
func (s *Service) writeSaveFile(w *world.World) error {
	if s.saveDir == "" {
		return nil
	}
	save, err := savegame.NewSave(w)
	if err != nil {
		return err
	}
	_, err = save.Write(s.saveDir)
	return err
}

func (s *Service) List(ctx context.Context) ([]WorldRecord, error) {
	return s.store.List(ctx)
}

func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*WorldRecord, error) {
	return s.store.GetRecord(ctx, id)
}

// Export returns the compressed save of a world, preferring the cache
func (s *Service) Export(ctx context.Context, id uuid.UUID) ([]byte, error) {
	logger := s.logger.With("component", "world_service", "operation", "export", "world_id", id)

	data, ok, err := s.cache.Get(ctx, id)
	if err != nil {
		logger.Warn("Save cache read failed", "error", err)
	}
	if ok {
		return data, nil
	}

	data, err = s.store.GetSave(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, id, data); err != nil {
		logger.Warn("Failed to cache save", "error", err)
	}
	return data, nil
}

// Load restores the full world tree from its stored save
func (s *Service) Load(ctx context.Context, id uuid.UUID) (*world.World, error) {
	data, err := s.Export(ctx, id)
	if err != nil {
		return nil, err
	}
	return savegame.Unpack(data)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*WorldView, error) {
	rec, err := s.store.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	w, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewWorldView(rec, w)
	return &view, nil
}

func (s *Service) Map(ctx context.Context, id uuid.UUID) (*MapView, error) {
	w, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewMapView(w)
	return &view, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	logger := s.logger.With("component", "world_service", "operation", "delete", "world_id", id)

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Warn("Failed to evict cached save", "error", err)
	}

	logger.Info("World deleted")
	return nil
}
