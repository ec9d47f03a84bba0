package system

import (
	"starmap-server/internal/planet"
	"starmap-server/internal/shared/identity"
	"starmap-server/internal/shared/random"
	"starmap-server/internal/spatial"
)

// Params bounds the number of planets generated per system
type Params struct {
	Planets random.Range `json:"planets" yaml:"planets"`
}

func DefaultParams() Params {
	return Params{Planets: random.Range{Min: 4, Max: 11}}
}

func (p Params) Validate() error {
	return p.Planets.Validate("planets per system", spatial.GridCells)
}

// Builder accumulates planet builders before Build finalizes them
type Builder struct {
	id      identity.Identity
	params  Params
	planets []*planet.Builder
	built   bool
}

func NewBuilder(src *random.Source, name string, params Params) (*Builder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Builder{id: identity.New(name, src), params: params}, nil
}

// MustNewBuilder is NewBuilder for params the caller has already validated
func MustNewBuilder(src *random.Source, name string, params Params) *Builder {
	b, err := NewBuilder(src, name, params)
	if err != nil {
		panic(err)
	}
	return b
}

// GenerateFull appends a random number of fully generated planets
func (b *Builder) GenerateFull(src *random.Source) {
	count := src.Between(b.params.Planets)
	for i := 0; i < count; i++ {
		child := b.AddPlanet(src, planet.Name(b.id.Name(), len(b.planets)))
		child.GenerateFull(src)
	}
}

// AddPlanet appends one empty planet builder and returns it
func (b *Builder) AddPlanet(src *random.Source, name string) *planet.Builder {
	child := planet.NewBuilder(src, name)
	b.planets = append(b.planets, child)
	return child
}

func (b *Builder) Rename(name string) {
	b.id.Update(name)
}

func (b *Builder) Identity() identity.Identity {
	return b.id
}

func (b *Builder) PlanetCount() int {
	return len(b.planets)
}

// Build consumes the builder and finalizes every planet in order.
// Calling it twice panics.
func (b *Builder) Build(src *random.Source) System {
	if b.built {
		panic("system: Build called on a consumed builder")
	}
	b.built = true

	planets := make([]planet.Planet, 0, len(b.planets))
	for _, child := range b.planets {
		planets = append(planets, child.Build(src))
	}
	b.planets = nil
	return New(b.id, planets)
}
