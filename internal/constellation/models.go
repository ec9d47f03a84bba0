package constellation

import (
	"maps"

	"starmap-server/internal/shared/identity"
	"starmap-server/internal/spatial"
	"starmap-server/internal/system"
)

// Constellation owns its systems, each at a unique coordinate
type Constellation struct {
	id      identity.Identity
	systems map[spatial.Coordinate]system.System
}

// Placed pairs a system with its coordinate
type Placed struct {
	Coordinate spatial.Coordinate
	System     system.System
}

// New copies systems so the finalized constellation cannot be changed through them
func New(id identity.Identity, systems map[spatial.Coordinate]system.System) Constellation {
	return Constellation{id: id, systems: maps.Clone(systems)}
}

func (c Constellation) Identity() identity.Identity {
	return c.id
}

func (c Constellation) Name() string {
	return c.id.Name()
}

func (c Constellation) SystemCount() int {
	return len(c.systems)
}

// System looks up the system at coord
func (c Constellation) System(coord spatial.Coordinate) (system.System, bool) {
	s, ok := c.systems[coord]
	return s, ok
}

// Systems returns every system ordered by coordinate
func (c Constellation) Systems() []Placed {
	out := make([]Placed, 0, len(c.systems))
	for _, coord := range spatial.Sorted(c.systems) {
		out = append(out, Placed{Coordinate: coord, System: c.systems[coord]})
	}
	return out
}

// PlanetCount totals the planets of every system
func (c Constellation) PlanetCount() int {
	total := 0
	for _, s := range c.systems {
		total += s.PlanetCount()
	}
	return total
}
