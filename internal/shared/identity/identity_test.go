package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starmap-server/internal/shared/random"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normalized", in: "vega", want: "vega"},
		{name: "mixed case", in: "Milky Way", want: "milkyway"},
		{name: "tabs and newlines", in: " Alpha\tCentauri\n Prime ", want: "alphacentauriprime"},
		{name: "empty", in: "", want: ""},
		{name: "unicode", in: "Ésta Estrella", want: "éstaestrella"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	id := New("Andromeda Prime", nil)

	assert.Equal(t, "Andromeda Prime", id.Name())
	assert.Equal(t, "andromedaprime", id.Key())
	assert.NotEqual(t, uuid.Nil, id.ID())
	assert.Equal(t, uuid.Version(4), id.ID().Version())
}

func TestNew_SeededEntropyIsReproducible(t *testing.T) {
	a := New("Vega", random.New(42))
	b := New("Vega", random.New(42))
	c := New("Vega", random.New(43))

	assert.Equal(t, a.ID(), b.ID())
	assert.NotEqual(t, a.ID(), c.ID())
	assert.Equal(t, uuid.Version(4), a.ID().Version())
}

func TestUpdate(t *testing.T) {
	id := New("Old Name", nil)
	original := id.ID()

	id.Update("New  Name")

	assert.Equal(t, "New  Name", id.Name())
	assert.Equal(t, "newname", id.Key())
	assert.Equal(t, original, id.ID())
}

func TestKeyIsIdempotent(t *testing.T) {
	names := []string{"Sirius", "Big Dipper", "  ", "ALPHA beta\tGAMMA"}
	for _, name := range names {
		id := New(name, nil)
		assert.Equal(t, Normalize(id.Name()), id.Key())
		assert.Equal(t, id.Key(), Normalize(id.Key()))
	}
}

func TestRestore(t *testing.T) {
	original := New("Rigel Sector", random.New(7))

	restored := Restore(original.Name(), original.ID())

	require.Equal(t, original, restored)
}
