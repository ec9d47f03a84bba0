package world

import (
	"starmap-server/internal/galaxy"
	"starmap-server/internal/shared/identity"
)

// World wraps the generated galaxy together with the seed that produced it
type World struct {
	id     identity.Identity
	galaxy galaxy.Galaxy
	seed   uint64
}

func New(id identity.Identity, g galaxy.Galaxy, seed uint64) *World {
	return &World{id: id, galaxy: g, seed: seed}
}

func (w *World) Identity() identity.Identity {
	return w.id
}

func (w *World) Name() string {
	return w.id.Name()
}

func (w *World) Galaxy() galaxy.Galaxy {
	return w.galaxy
}

func (w *World) Seed() uint64 {
	return w.seed
}
