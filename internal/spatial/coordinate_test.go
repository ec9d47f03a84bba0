package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starmap-server/internal/shared/random"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate
		want float64
	}{
		{name: "same point", a: Coordinate{3, 4}, b: Coordinate{3, 4}, want: 0},
		{name: "3-4-5 triangle", a: Coordinate{0, 0}, b: Coordinate{3, 4}, want: 5},
		{name: "horizontal", a: Coordinate{0, 0}, b: Coordinate{90, 0}, want: 90},
		{name: "negative axis", a: Coordinate{0, 0}, b: Coordinate{-120, 0}, want: 120},
		{name: "across origin", a: Coordinate{90, 0}, b: Coordinate{-120, 0}, want: 210},
		{name: "full axis span", a: Coordinate{-128, 0}, b: Coordinate{127, 0}, want: 255},
		{name: "full diagonal span", a: Coordinate{-128, -128}, b: Coordinate{127, 127}, want: math.Sqrt(2 * 255 * 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, Distance(tt.b, tt.a), 1e-9)
		})
	}
}

func TestWithinRadius(t *testing.T) {
	origin := Coordinate{0, 0}

	assert.True(t, WithinRadius(origin, Coordinate{90, 0}, 128))
	assert.True(t, WithinRadius(origin, Coordinate{-120, 0}, 128))
	assert.True(t, WithinRadius(origin, Coordinate{0, 128 - 1}, 127))
	assert.False(t, WithinRadius(Coordinate{90, 0}, Coordinate{-120, 0}, 128))
	assert.True(t, WithinRadius(origin, origin, 0))
}

func TestWithinRadius_Symmetric(t *testing.T) {
	src := random.New(2024)
	for i := 0; i < 500; i++ {
		a := RandomCoordinate(src)
		b := RandomCoordinate(src)
		r := float64(src.Pick(200))
		require.Equal(t, WithinRadius(a, b, r), WithinRadius(b, a, r), "a=%s b=%s r=%v", a, b, r)
	}
}

func TestFreeCoordinate_AvoidsTaken(t *testing.T) {
	src := random.New(1)
	taken := map[Coordinate]struct{}{}
	for i := 0; i < 500; i++ {
		c := FreeCoordinate(src, taken)
		_, exists := taken[c]
		require.False(t, exists)
		taken[c] = struct{}{}
	}
	assert.Len(t, taken, 500)
}

func TestSorted(t *testing.T) {
	m := map[Coordinate]int{
		{X: 5, Y: 1}:   0,
		{X: -3, Y: 9}:  0,
		{X: 5, Y: -2}:  0,
		{X: -3, Y: -9}: 0,
	}

	assert.Equal(t, []Coordinate{{-3, -9}, {-3, 9}, {5, -2}, {5, 1}}, Sorted(m))
}
