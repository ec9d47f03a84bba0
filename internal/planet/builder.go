package planet

import (
	"fmt"

	"starmap-server/internal/shared/identity"
	"starmap-server/internal/shared/random"
)

// Builder accumulates a planet before it is finalized by Build
type Builder struct {
	id    identity.Identity
	built bool
}

func NewBuilder(src *random.Source, name string) *Builder {
	return &Builder{id: identity.New(name, src)}
}

// GenerateFull is a no-op: planets have no children
func (b *Builder) GenerateFull(src *random.Source) {}

func (b *Builder) Rename(name string) {
	b.id.Update(name)
}

func (b *Builder) Identity() identity.Identity {
	return b.id
}

// Build consumes the builder. Calling it twice panics.
func (b *Builder) Build(src *random.Source) Planet {
	if b.built {
		panic("planet: Build called on a consumed builder")
	}
	b.built = true
	return New(b.id)
}

var numerals = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX",
}

// Name returns the conventional name of the index-th planet of a system
func Name(systemName string, index int) string {
	if index < len(numerals) {
		return fmt.Sprintf("%s %s", systemName, numerals[index])
	}
	return fmt.Sprintf("%s %d", systemName, index+1)
}
