package spatial

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"starmap-server/internal/shared/random"
)

// GridCells is the number of distinct coordinates on the grid
const GridCells = 256 * 256

// Coordinate places an entity on the signed 8-bit grid
type Coordinate struct {
	X int8 `json:"x" yaml:"x"`
	Y int8 `json:"y" yaml:"y"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Compare orders coordinates by x, then y
func (c Coordinate) Compare(other Coordinate) int {
	if r := cmp.Compare(c.X, other.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, other.Y)
}

// Distance returns the Euclidean distance between a and b.
// Deltas reach 255 in magnitude, so they are widened before squaring.
func Distance(a, b Coordinate) float64 {
	dx := int32(a.X) - int32(b.X)
	dy := int32(a.Y) - int32(b.Y)
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// WithinRadius reports whether point lies at most radius away from center
func WithinRadius(center, point Coordinate, radius float64) bool {
	return Distance(center, point) <= radius
}

// RandomCoordinate draws x then y from src
func RandomCoordinate(src *random.Source) Coordinate {
	x := src.Int8()
	y := src.Int8()
	return Coordinate{X: x, Y: y}
}

// FreeCoordinate draws coordinates until one is not taken
func FreeCoordinate[V any](src *random.Source, taken map[Coordinate]V) Coordinate {
	for {
		c := RandomCoordinate(src)
		if _, exists := taken[c]; !exists {
			return c
		}
	}
}

// Sorted returns the keys of m in Compare order
func Sorted[V any](m map[Coordinate]V) []Coordinate {
	coords := make([]Coordinate, 0, len(m))
	for c := range m {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, Coordinate.Compare)
	return coords
}
