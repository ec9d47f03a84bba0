package system

import (
	"slices"

	"starmap-server/internal/planet"
	"starmap-server/internal/shared/identity"
)

// System owns an ordered list of planets
type System struct {
	id      identity.Identity
	planets []planet.Planet
}

// New copies planets so the finalized system cannot be changed through them
func New(id identity.Identity, planets []planet.Planet) System {
	return System{id: id, planets: slices.Clone(planets)}
}

func (s System) Identity() identity.Identity {
	return s.id
}

func (s System) Name() string {
	return s.id.Name()
}

// Planets returns a copy of the planets in insertion order
func (s System) Planets() []planet.Planet {
	return slices.Clone(s.planets)
}

func (s System) PlanetCount() int {
	return len(s.planets)
}
