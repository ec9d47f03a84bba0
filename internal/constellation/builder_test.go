package constellation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starmap-server/internal/shared/errors"
	"starmap-server/internal/shared/random"
	"starmap-server/internal/spatial"
	"starmap-server/internal/system"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantErr string
	}{
		{name: "defaults", mutate: func(p *Params) {}},
		{name: "inverted systems", mutate: func(p *Params) { p.Systems = random.Range{Min: 7, Max: 4} }, wantErr: "systems per constellation"},
		{name: "inverted planets", mutate: func(p *Params) { p.System.Planets = random.Range{Min: 9, Max: 2} }, wantErr: "planets per system"},
		{name: "too many systems", mutate: func(p *Params) { p.Systems = random.Range{Min: 1, Max: spatial.GridCells + 1} }, wantErr: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
		})
	}
}

func TestBuilder_GenerateFullRespectsRanges(t *testing.T) {
	params := DefaultParams()
	for seed := uint64(0); seed < 30; seed++ {
		src := random.New(seed)
		b, err := NewBuilder(src, "Orion", params)
		require.NoError(t, err)
		b.GenerateFull(src)

		c := b.Build(src)

		assert.GreaterOrEqual(t, c.SystemCount(), params.Systems.Min)
		assert.LessOrEqual(t, c.SystemCount(), params.Systems.Max)
		for _, placed := range c.Systems() {
			assert.GreaterOrEqual(t, placed.System.PlanetCount(), params.System.Planets.Min)
			assert.LessOrEqual(t, placed.System.PlanetCount(), params.System.Planets.Max)
		}
	}
}

func TestBuilder_BuildPlacesEverySystem(t *testing.T) {
	src := random.New(11)
	b := MustNewBuilder(src, "Lyra", DefaultParams())
	for i := 0; i < 40; i++ {
		b.AddSystem(src, system.RandomName(src))
	}
	require.Equal(t, 40, b.SystemCount())

	c := b.Build(src)

	assert.Equal(t, 40, c.SystemCount())
	for _, placed := range c.Systems() {
		found, ok := c.System(placed.Coordinate)
		require.True(t, ok)
		assert.Equal(t, placed.System.Identity(), found.Identity())
	}
}

func TestBuilder_Deterministic(t *testing.T) {
	build := func() Constellation {
		src := random.New(31337)
		b := MustNewBuilder(src, "Cygnus", DefaultParams())
		b.GenerateFull(src)
		return b.Build(src)
	}

	a, b := build(), build()

	require.Equal(t, a.SystemCount(), b.SystemCount())
	pa, pb := a.Systems(), b.Systems()
	for i := range pa {
		assert.Equal(t, pa[i].Coordinate, pb[i].Coordinate)
		assert.Equal(t, pa[i].System.Identity(), pb[i].System.Identity())
		assert.Equal(t, pa[i].System.Planets(), pb[i].System.Planets())
	}
	assert.Equal(t, a.PlanetCount(), b.PlanetCount())
}

func TestBuilder_SystemsSortedByCoordinate(t *testing.T) {
	src := random.New(5)
	b := MustNewBuilder(src, "Draco", DefaultParams())
	b.GenerateFull(src)

	placed := b.Build(src).Systems()

	for i := 1; i < len(placed); i++ {
		assert.Negative(t, placed[i-1].Coordinate.Compare(placed[i].Coordinate))
	}
}

func TestBuilder_BuildTwicePanics(t *testing.T) {
	src := random.New(5)
	b := MustNewBuilder(src, "Draco", DefaultParams())
	b.Build(src)

	assert.Panics(t, func() { b.Build(src) })
}
