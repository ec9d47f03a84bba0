package world

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"

	"starmap-server/internal/galaxy"
	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/identity"
	"starmap-server/internal/shared/random"
)

type Params struct {
	Galaxy galaxy.Params `json:"galaxy" yaml:"galaxy"`
}

func DefaultParams() Params {
	return Params{Galaxy: galaxy.DefaultParams()}
}

func (p Params) Validate() error {
	return p.Galaxy.Validate()
}

// Builder is the top of the generator tree
type Builder struct {
	id     identity.Identity
	galaxy *galaxy.Builder
	seed   uint64
	built  bool
}

// NewBuilder validates params and creates an empty world. The world is named
// after a number drawn from src until Name is called.
func NewBuilder(src *random.Source, params Params) (*Builder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	name := strconv.FormatUint(src.Uint64(), 10)
	id := identity.New(name, src)

	g, err := galaxy.NewBuilder(src, galaxy.RandomName(src), params.Galaxy)
	if err != nil {
		return nil, err
	}
	return &Builder{id: id, galaxy: g, seed: src.Seed()}, nil
}

// Name replaces the world's display name, keeping its unique id
func (b *Builder) Name(name string) *Builder {
	b.id.Update(name)
	return b
}

// Galaxy exposes the galaxy builder for manual construction
func (b *Builder) Galaxy() *galaxy.Builder {
	return b.galaxy
}

// GenerateFull populates the whole galaxy tree
func (b *Builder) GenerateFull(src *random.Source) *Builder {
	b.galaxy.GenerateFull(src)
	return b
}

// Build consumes the builder. Calling it twice panics.
func (b *Builder) Build(src *random.Source) *World {
	if b.built {
		panic("world: Build called on a consumed builder")
	}
	b.built = true
	return New(b.id, b.galaxy.Build(src), b.seed)
}

// Generate is the single entry point used by collaborators: it builds a
// complete world from src. An empty name keeps the drawn numeric name.
//
// The world id is a function of the seed, name and params together, so the
// same request always yields the same id while changing any of the three
// yields a different one.
func Generate(src *random.Source, name string, params Params) (*World, error) {
	b, err := NewBuilder(src, params)
	if err != nil {
		return nil, err
	}
	if name != "" {
		b.Name(name)
	}

	id, err := requestID(b.id.ID(), name, params)
	if err != nil {
		return nil, err
	}
	b.id = identity.Restore(b.id.Name(), id)

	return b.GenerateFull(src).Build(src), nil
}

// requestID namespaces the drawn id with the generation inputs
func requestID(drawn uuid.UUID, name string, params Params) (uuid.UUID, error) {
	inputs, err := json.Marshal(struct {
		Name   string `json:"name"`
		Params Params `json:"params"`
	}{name, params})
	if err != nil {
		return uuid.Nil, errors.WrapInternal("failed to fingerprint world params", err)
	}
	return uuid.NewSHA1(drawn, inputs), nil
}
