package savegame

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"starmap-server/internal/shared/errors"
	"starmap-server/internal/world"
)

// Extension is appended to every object written by Save.Write
const Extension = ".yaml.gz"

// Object is one serialized entry of a save, named after its owner's id
type Object struct {
	Name string
	Data []byte
}

// Save bundles serialized objects under a save id
type Save struct {
	ID      uuid.UUID
	Objects []Object
}

// NewSave encodes each world into an object named after the world's id
func NewSave(worlds ...*world.World) (*Save, error) {
	save := &Save{ID: uuid.New()}
	for _, w := range worlds {
		data, err := Encode(w)
		if err != nil {
			return nil, err
		}
		save.Objects = append(save.Objects, Object{Name: w.Identity().ID().String(), Data: data})
	}
	return save, nil
}

// Write compresses every object into dir/<name>.yaml.gz and returns the paths
func (s *Save) Write(dir string) ([]string, error) {
	logger := slog.With("component", "savegame", "operation", "write", "save_id", s.ID, "dir", dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("Failed to create save directory", "error", err)
		return nil, errors.WrapInternal("failed to create save directory", err)
	}

	paths := make([]string, 0, len(s.Objects))
	for _, obj := range s.Objects {
		compressed, err := Compress(obj.Data)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, obj.Name+Extension)
		if err := os.WriteFile(path, compressed, 0o644); err != nil {
			logger.Error("Failed to write save file", "path", path, "error", err)
			return nil, errors.WrapInternal("failed to write save file", err)
		}
		paths = append(paths, path)
	}

	logger.Info("Save written", "objects", len(paths))
	return paths, nil
}

// ReadFile loads a world written by Save.Write
func ReadFile(path string) (*world.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("save file %s not found", filepath.Base(path))
		}
		return nil, errors.WrapInternal("failed to read save file", err)
	}
	return Unpack(data)
}
