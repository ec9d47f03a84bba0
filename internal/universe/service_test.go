package universe

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starmap-server/internal/savegame"
	"starmap-server/internal/shared/config"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/random"
	"starmap-server/internal/world"
)

type memStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]WorldRecord
	saves   map[uuid.UUID][]byte
	gets    int
}

func newMemStore() *memStore {
	return &memStore{
		records: make(map[uuid.UUID]WorldRecord),
		saves:   make(map[uuid.UUID][]byte),
	}
}

func (m *memStore) Create(_ context.Context, rec *WorldRecord, save []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[rec.ID]; ok {
		return errors.Conflictf("world %s already exists", rec.ID)
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	m.records[rec.ID] = *rec
	m.saves[rec.ID] = save
	return nil
}

func (m *memStore) GetRecord(_ context.Context, id uuid.UUID) (*WorldRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, errors.NotFoundf("world %s not found", id)
	}
	return &rec, nil
}

func (m *memStore) GetSave(_ context.Context, id uuid.UUID) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	save, ok := m.saves[id]
	if !ok {
		return nil, errors.NotFoundf("world %s not found", id)
	}
	return save, nil
}

func (m *memStore) List(context.Context) ([]WorldRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []WorldRecord
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return errors.NotFoundf("world %s not found", id)
	}
	delete(m.records, id)
	delete(m.saves, id)
	return nil
}

type memCache struct {
	data map[uuid.UUID][]byte
}

func (c *memCache) Get(_ context.Context, id uuid.UUID) ([]byte, bool, error) {
	d, ok := c.data[id]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, id uuid.UUID, save []byte) error {
	c.data[id] = save
	return nil
}

func (c *memCache) Delete(_ context.Context, id uuid.UUID) error {
	delete(c.data, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seed(v uint64) *uint64 {
	return &v
}

func TestService_GenerateIsReproducible(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), nil, world.DefaultParams(), "", testLogger())

	a, err := svc.Generate(ctx, GenerateRequest{Seed: seed(42)})
	require.NoError(t, err)

	other := NewService(newMemStore(), nil, world.DefaultParams(), "", testLogger())
	b, err := other.Generate(ctx, GenerateRequest{Seed: seed(42)})
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.GalaxyName, b.GalaxyName)
	assert.Equal(t, uint64(42), a.Seed)
	assert.Equal(t, a.SystemCount, b.SystemCount)
	assert.Equal(t, a.ConnectionCount, b.ConnectionCount)
}

func TestService_GenerateSameSeedTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), nil, world.DefaultParams(), "", testLogger())

	_, err := svc.Generate(ctx, GenerateRequest{Seed: seed(7)})
	require.NoError(t, err)

	_, err = svc.Generate(ctx, GenerateRequest{Seed: seed(7)})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeConflict, errors.GetType(err))
}

func TestService_GenerateSameSeedOtherConfiguration(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewService(store, nil, world.DefaultParams(), "", testLogger())

	first, err := svc.Generate(ctx, GenerateRequest{Seed: seed(5)})
	require.NoError(t, err)

	params := world.DefaultParams()
	params.Galaxy.Constellations = random.Range{Min: 2, Max: 2}
	params.Galaxy.ConnectionRadius = 64
	second, err := svc.Generate(ctx, GenerateRequest{Seed: seed(5), Name: "Other", Params: &params})
	require.NoError(t, err)

	renamed, err := svc.Generate(ctx, GenerateRequest{Seed: seed(5), Name: "Renamed"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.ID, renamed.ID)
	assert.Equal(t, 2, second.ConstellationCount)
	assert.Len(t, store.records, 3)
}

func TestService_GenerateHonoursNameAndParams(t *testing.T) {
	params := world.DefaultParams()
	params.Galaxy.Constellations = random.Range{Min: 2, Max: 2}
	params.Galaxy.Constellation.Systems = random.Range{Min: 1, Max: 1}
	params.Galaxy.Constellation.System.Planets = random.Range{Min: 3, Max: 3}

	svc := NewService(newMemStore(), nil, world.DefaultParams(), "", testLogger())
	rec, err := svc.Generate(context.Background(), GenerateRequest{Seed: seed(1), Name: "Home Cluster", Params: &params})
	require.NoError(t, err)

	assert.Equal(t, "Home Cluster", rec.Name)
	assert.Equal(t, "homecluster", rec.Key)
	assert.Equal(t, 2, rec.ConstellationCount)
	assert.Equal(t, 2, rec.SystemCount)
	assert.Equal(t, 6, rec.PlanetCount)
}

func TestService_GenerateRejectsInvalidParams(t *testing.T) {
	params := world.DefaultParams()
	params.Galaxy.Constellations = random.Range{Min: 5, Max: 1}

	store := newMemStore()
	svc := NewService(store, nil, world.DefaultParams(), "", testLogger())
	_, err := svc.Generate(context.Background(), GenerateRequest{Params: &params})

	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
	assert.Empty(t, store.records)
}

func TestService_GenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(newMemStore(), nil, world.DefaultParams(), "", testLogger())
	_, err := svc.Generate(ctx, GenerateRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_GenerateWritesSaveFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(newMemStore(), nil, world.DefaultParams(), dir, testLogger())

	rec, err := svc.Generate(context.Background(), GenerateRequest{Seed: seed(9)})
	require.NoError(t, err)

	path := filepath.Join(dir, rec.ID.String()+savegame.Extension)
	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := savegame.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Name, loaded.Name())
}

type failingStore struct {
	*memStore
}

func (failingStore) Create(context.Context, *WorldRecord, []byte) error {
	return errors.WrapExternal("insert failed", os.ErrDeadlineExceeded)
}

func TestService_GenerateSkipsSaveFileWhenStoreFails(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(failingStore{newMemStore()}, nil, world.DefaultParams(), dir, testLogger())

	_, err := svc.Generate(context.Background(), GenerateRequest{Seed: seed(9)})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeExternal, errors.GetType(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_ConflictLeavesSaveFileAlone(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(newMemStore(), nil, world.DefaultParams(), dir, testLogger())

	rec, err := svc.Generate(context.Background(), GenerateRequest{Seed: seed(9)})
	require.NoError(t, err)

	path := filepath.Join(dir, rec.ID.String()+savegame.Extension)
	require.NoError(t, os.WriteFile(path, []byte("sentinel"), 0o644))

	_, err = svc.Generate(context.Background(), GenerateRequest{Seed: seed(9)})
	require.Equal(t, errors.ErrorTypeConflict, errors.GetType(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sentinel", string(data))
}

func TestService_ExportUsesCache(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	cache := &memCache{data: make(map[uuid.UUID][]byte)}
	svc := NewService(store, cache, world.DefaultParams(), "", testLogger())

	rec, err := svc.Generate(ctx, GenerateRequest{Seed: seed(3)})
	require.NoError(t, err)
	require.Contains(t, cache.data, rec.ID)

	data, err := svc.Export(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, cache.data[rec.ID], data)
	assert.Equal(t, 0, store.gets)

	delete(cache.data, rec.ID)
	_, err = svc.Export(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, store.gets)
	assert.Contains(t, cache.data, rec.ID)
}

func TestService_GetAndMap(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), nil, world.DefaultParams(), "", testLogger())

	rec, err := svc.Generate(ctx, GenerateRequest{Seed: seed(11)})
	require.NoError(t, err)

	view, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, view.Record.ID)
	assert.Len(t, view.Galaxy.Constellations, rec.ConstellationCount)
	assert.Equal(t, rec.PlanetCount, view.Galaxy.Stats.Planets)

	m, err := svc.Map(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, m.WorldID)
	assert.Len(t, m.Constellations, rec.ConstellationCount)
	assert.Len(t, m.Connections, rec.ConnectionCount)

	systems := 0
	for _, node := range m.Constellations {
		systems += node.Systems
	}
	assert.Equal(t, rec.SystemCount, systems)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	cache := &memCache{data: make(map[uuid.UUID][]byte)}
	svc := NewService(newMemStore(), cache, world.DefaultParams(), "", testLogger())

	rec, err := svc.Generate(ctx, GenerateRequest{Seed: seed(5)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rec.ID))
	assert.NotContains(t, cache.data, rec.ID)

	_, err = svc.GetRecord(ctx, rec.ID)
	assert.Equal(t, errors.ErrorTypeNotFound, errors.GetType(err))

	err = svc.Delete(ctx, rec.ID)
	assert.Equal(t, errors.ErrorTypeNotFound, errors.GetType(err))
}

func TestParamsFromConfig(t *testing.T) {
	cfg := config.GenerationConfig{
		Constellations:   random.Range{Min: 1, Max: 2},
		Systems:          random.Range{Min: 3, Max: 4},
		Planets:          random.Range{Min: 5, Max: 6},
		ConnectionRadius: 32,
	}

	params := ParamsFromConfig(cfg)
	assert.Equal(t, cfg.Constellations, params.Galaxy.Constellations)
	assert.Equal(t, cfg.Systems, params.Galaxy.Constellation.Systems)
	assert.Equal(t, cfg.Planets, params.Galaxy.Constellation.System.Planets)
	assert.Equal(t, 32.0, params.Galaxy.ConnectionRadius)

	svc := NewService(newMemStore(), nil, params, "", testLogger())
	assert.Equal(t, params, svc.Params())
}
