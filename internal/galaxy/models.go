package galaxy

import (
	"maps"

	"starmap-server/internal/constellation"
	"starmap-server/internal/shared/identity"
	"starmap-server/internal/spatial"
)

// Galaxy owns its constellations. Connections reference constellation
// coordinates as keys into the same map.
type Galaxy struct {
	id             identity.Identity
	constellations map[spatial.Coordinate]constellation.Constellation
	connections    spatial.Connections
}

// Placed pairs a constellation with its coordinate
type Placed struct {
	Coordinate    spatial.Coordinate
	Constellation constellation.Constellation
}

// New copies constellations. Edges whose endpoints are not constellation
// coordinates are dropped.
func New(id identity.Identity, constellations map[spatial.Coordinate]constellation.Constellation, connections spatial.Connections) Galaxy {
	kept := make([]spatial.Edge, 0, connections.Len())
	for _, e := range connections.Edges() {
		_, okA := constellations[e.A]
		_, okB := constellations[e.B]
		if okA && okB {
			kept = append(kept, e)
		}
	}
	return Galaxy{
		id:             id,
		constellations: maps.Clone(constellations),
		connections:    spatial.NewConnections(kept...),
	}
}

func (g Galaxy) Identity() identity.Identity {
	return g.id
}

func (g Galaxy) Name() string {
	return g.id.Name()
}

func (g Galaxy) ConstellationCount() int {
	return len(g.constellations)
}

func (g Galaxy) Constellation(coord spatial.Coordinate) (constellation.Constellation, bool) {
	c, ok := g.constellations[coord]
	return c, ok
}

// Constellations returns every constellation ordered by coordinate
func (g Galaxy) Constellations() []Placed {
	out := make([]Placed, 0, len(g.constellations))
	for _, coord := range spatial.Sorted(g.constellations) {
		out = append(out, Placed{Coordinate: coord, Constellation: g.constellations[coord]})
	}
	return out
}

func (g Galaxy) Connections() spatial.Connections {
	return g.connections
}

// Stats totals the entities below the galaxy
type Stats struct {
	Constellations int `json:"constellations"`
	Systems        int `json:"systems"`
	Planets        int `json:"planets"`
	Connections    int `json:"connections"`
}

func (g Galaxy) Stats() Stats {
	stats := Stats{
		Constellations: len(g.constellations),
		Connections:    g.connections.Len(),
	}
	for _, c := range g.constellations {
		stats.Systems += c.SystemCount()
		stats.Planets += c.PlanetCount()
	}
	return stats
}
