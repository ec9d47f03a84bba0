package galaxy

import (
	"math"

	"starmap-server/internal/constellation"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/identity"
	"starmap-server/internal/shared/random"
	"starmap-server/internal/spatial"
)

// DefaultConnectionRadius is the default proximity threshold for linking constellations
const DefaultConnectionRadius = 128

type Params struct {
	Constellations   random.Range         `json:"constellations" yaml:"constellations"`
	ConnectionRadius float64              `json:"connection_radius" yaml:"connection_radius"`
	Constellation    constellation.Params `json:"constellation" yaml:"constellation"`
}

func DefaultParams() Params {
	return Params{
		Constellations:   random.Range{Min: 4, Max: 7},
		ConnectionRadius: DefaultConnectionRadius,
		Constellation:    constellation.DefaultParams(),
	}
}

func (p Params) Validate() error {
	if err := p.Constellations.Validate("constellations per galaxy", spatial.GridCells); err != nil {
		return err
	}
	if r := p.ConnectionRadius; math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return errors.Validationf("connection radius must be a finite, non-negative number (got %v)", r)
	}
	return p.Constellation.Validate()
}

// Builder accumulates constellation builders. Coordinates and connections
// are only decided by Build.
type Builder struct {
	id             identity.Identity
	params         Params
	constellations []*constellation.Builder
	built          bool
}

func NewBuilder(src *random.Source, name string, params Params) (*Builder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Builder{id: identity.New(name, src), params: params}, nil
}

// GenerateFull appends a random number of fully generated constellations
func (b *Builder) GenerateFull(src *random.Source) {
	count := src.Between(b.params.Constellations)
	for i := 0; i < count; i++ {
		child := b.AddConstellation(src, constellation.RandomName(src))
		child.GenerateFull(src)
	}
}

// AddConstellation appends one empty constellation builder and returns it
func (b *Builder) AddConstellation(src *random.Source, name string) *constellation.Builder {
	child := constellation.MustNewBuilder(src, name, b.params.Constellation)
	b.constellations = append(b.constellations, child)
	return child
}

func (b *Builder) Rename(name string) {
	b.id.Update(name)
}

func (b *Builder) Identity() identity.Identity {
	return b.id
}

func (b *Builder) ConstellationCount() int {
	return len(b.constellations)
}

// Build consumes the builder. Each constellation is placed on a free random
// coordinate and finalized, then the connection graph is derived from the
// final coordinates. Calling it twice panics.
func (b *Builder) Build(src *random.Source) Galaxy {
	if b.built {
		panic("galaxy: Build called on a consumed builder")
	}
	b.built = true

	constellations := make(map[spatial.Coordinate]constellation.Constellation, len(b.constellations))
	for _, child := range b.constellations {
		coord := spatial.FreeCoordinate(src, constellations)
		constellations[coord] = child.Build(src)
	}
	b.constellations = nil

	connections := spatial.DeriveConnections(spatial.Sorted(constellations), b.params.ConnectionRadius)
	return New(b.id, constellations, connections)
}
