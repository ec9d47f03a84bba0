package planet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"starmap-server/internal/shared/random"
)

func TestBuilder_Build(t *testing.T) {
	src := random.New(3)
	b := NewBuilder(src, "Vega II")
	b.GenerateFull(src)

	p := b.Build(src)

	assert.Equal(t, "Vega II", p.Name())
	assert.Equal(t, "vegaii", p.Identity().Key())
	assert.Equal(t, b.Identity().ID(), p.Identity().ID())
}

func TestBuilder_RenameBeforeBuild(t *testing.T) {
	src := random.New(3)
	b := NewBuilder(src, "Draft")
	id := b.Identity().ID()

	b.Rename("Final Name")
	p := b.Build(src)

	assert.Equal(t, "Final Name", p.Name())
	assert.Equal(t, "finalname", p.Identity().Key())
	assert.Equal(t, id, p.Identity().ID())
}

func TestBuilder_BuildTwicePanics(t *testing.T) {
	src := random.New(3)
	b := NewBuilder(src, "Once")
	b.Build(src)

	assert.Panics(t, func() { b.Build(src) })
}

func TestName(t *testing.T) {
	assert.Equal(t, "Sirius I", Name("Sirius", 0))
	assert.Equal(t, "Sirius XI", Name("Sirius", 10))
	assert.Equal(t, "Sirius 21", Name("Sirius", 20))
}
