package constellation

import (
	"starmap-server/internal/shared/identity"
	"starmap-server/internal/shared/random"
	"starmap-server/internal/spatial"
	"starmap-server/internal/system"
)

type Params struct {
	Systems random.Range  `json:"systems" yaml:"systems"`
	System  system.Params `json:"system" yaml:"system"`
}

func DefaultParams() Params {
	return Params{
		Systems: random.Range{Min: 4, Max: 7},
		System:  system.DefaultParams(),
	}
}

func (p Params) Validate() error {
	if err := p.Systems.Validate("systems per constellation", spatial.GridCells); err != nil {
		return err
	}
	return p.System.Validate()
}

// Builder accumulates system builders. Coordinates are only assigned by Build.
type Builder struct {
	id      identity.Identity
	params  Params
	systems []*system.Builder
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

// GenerateFull appends a random number of fully generated systems
func (b *Builder) GenerateFull(src *random.Source) {
	count := src.Between(b.params.Systems)
	for i := 0; i < count; i++ {
		child := b.AddSystem(src, system.RandomName(src))
		child.GenerateFull(src)
	}
}

// AddSystem appends one empty system builder and returns it
func (b *Builder) AddSystem(src *random.Source, name string) *system.Builder {
	child := system.MustNewBuilder(src, name, b.params.System)
	b.systems = append(b.systems, child)
	return child
}

func (b *Builder) Rename(name string) {
	b.id.Update(name)
}

func (b *Builder) Identity() identity.Identity {
	return b.id
}

func (b *Builder) SystemCount() int {
	return len(b.systems)
}

// Build consumes the builder. Each system is given a random coordinate not
// already used in this constellation, then finalized. Calling it twice panics.
func (b *Builder) Build(src *random.Source) Constellation {
	if b.built {
		panic("constellation: Build called on a consumed builder")
	}
	b.built = true

	systems := make(map[spatial.Coordinate]system.System, len(b.systems))
	for _, child := range b.systems {
		coord := spatial.FreeCoordinate(src, systems)
		systems[coord] = child.Build(src)
	}
	b.systems = nil
	return New(b.id, systems)
}
