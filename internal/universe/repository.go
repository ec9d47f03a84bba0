package universe

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"starmap-server/internal/shared/database"
	"starmap-server/internal/shared/errors"
)

// Store persists world records together with their compressed saves
type Store interface {
	Create(ctx context.Context, rec *WorldRecord, save []byte) error
	GetRecord(ctx context.Context, id uuid.UUID) (*WorldRecord, error)
	GetSave(ctx context.Context, id uuid.UUID) ([]byte, error)
	List(ctx context.Context) ([]WorldRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const uniqueViolation = "23505"

type Repository struct {
	db     database.Executor
	logger *slog.Logger
}

func NewRepository(db database.Executor, logger *slog.Logger) *Repository {
	logger.Debug("Initializing world repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) Create(ctx context.Context, rec *WorldRecord, save []byte) error {
	logger := r.logger.With("component", "world_repository", "operation", "create_world", "world_id", rec.ID)
	logger.Debug("Creating world")

	query := `
		INSERT INTO worlds (id, name, name_key, galaxy_name, seed, constellation_count, system_count, planet_count, connection_count, save_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		rec.ID,
		rec.Name,
		rec.Key,
		rec.GalaxyName,
		int64(rec.Seed),
		rec.ConstellationCount,
		rec.SystemCount,
		rec.PlanetCount,
		rec.ConnectionCount,
		save,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			logger.Info("World already exists")
			return errors.Conflictf("world %s already exists", rec.ID)
		}
		logger.Error("Failed to create world", "error", err)
		return errors.WrapInternal("failed to create world", err)
	}

	logger.Info("World created successfully", "size_bytes", len(save))
	return nil
}

func (r *Repository) GetRecord(ctx context.Context, id uuid.UUID) (*WorldRecord, error) {
	logger := r.logger.With("component", "world_repository", "operation", "get_world", "world_id", id)
	logger.Debug("Getting world")

	query := `
		SELECT id, name, name_key, galaxy_name, seed, constellation_count, system_count, planet_count, connection_count, created_at, updated_at
		FROM worlds
		WHERE id = $1`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("World not found")
			return nil, errors.NotFoundf("world %s not found", id)
		}
		logger.Error("Database error getting world", "error", err)
		return nil, errors.WrapInternal("failed to get world", err)
	}

	return rec, nil
}

func (r *Repository) GetSave(ctx context.Context, id uuid.UUID) ([]byte, error) {
	logger := r.logger.With("component", "world_repository", "operation", "get_save", "world_id", id)

	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT save_data FROM worlds WHERE id = $1`, id).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("World save not found")
			return nil, errors.NotFoundf("world %s not found", id)
		}
		logger.Error("Database error getting world save", "error", err)
		return nil, errors.WrapInternal("failed to get world save", err)
	}

	logger.Debug("World save retrieved", "size_bytes", len(data))
	return data, nil
}

func (r *Repository) List(ctx context.Context) ([]WorldRecord, error) {
	logger := r.logger.With("component", "world_repository", "operation", "list_worlds")

	query := `
		SELECT id, name, name_key, galaxy_name, seed, constellation_count, system_count, planet_count, connection_count, created_at, updated_at
		FROM worlds
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("Failed to list worlds", "error", err)
		return nil, errors.WrapInternal("failed to list worlds", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var records []WorldRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			logger.Error("Failed to scan world row", "error", err)
			return nil, errors.WrapInternal("failed to scan world", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, errors.WrapInternal("error iterating worlds", err)
	}

	logger.Debug("Worlds retrieved", "count", len(records))
	return records, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := r.logger.With("component", "world_repository", "operation", "delete_world", "world_id", id)

	result, err := r.db.ExecContext(ctx, `DELETE FROM worlds WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete world", "error", err)
		return errors.WrapInternal("failed to delete world", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NotFoundf("world %s not found", id)
	}

	logger.Info("World deleted")
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*WorldRecord, error) {
	var rec WorldRecord
	var seed int64
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Key,
		&rec.GalaxyName,
		&seed,
		&rec.ConstellationCount,
		&rec.SystemCount,
		&rec.PlanetCount,
		&rec.ConnectionCount,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Seed = uint64(seed)
	return &rec, nil
}
