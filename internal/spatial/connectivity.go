package spatial

import (
	"fmt"
	"slices"
)

// Edge is an undirected link between two distinct coordinates.
// NewEdge stores the endpoints in Compare order so {A,B} and {B,A} share a key.
type Edge struct {
	A Coordinate `json:"a" yaml:"a"`
	B Coordinate `json:"b" yaml:"b"`
}

func NewEdge(a, b Coordinate) Edge {
	if b.Compare(a) < 0 {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

func (e Edge) String() string {
	return fmt.Sprintf("%s-%s", e.A, e.B)
}

// Length is the Euclidean distance between the endpoints
func (e Edge) Length() float64 {
	return Distance(e.A, e.B)
}

// Connections is an immutable set of undirected edges
type Connections struct {
	edges map[Edge]struct{}
}

// NewConnections builds a set from edges, dropping self-pairs and duplicates
func NewConnections(edges ...Edge) Connections {
	c := Connections{edges: make(map[Edge]struct{}, len(edges))}
	for _, e := range edges {
		if e.A == e.B {
			continue
		}
		c.edges[NewEdge(e.A, e.B)] = struct{}{}
	}
	return c
}

// Has reports whether a and b are linked, in either order
func (c Connections) Has(a, b Coordinate) bool {
	if _, ok := c.edges[Edge{A: a, B: b}]; ok {
		return true
	}
	_, ok := c.edges[Edge{A: b, B: a}]
	return ok
}

func (c Connections) Len() int {
	return len(c.edges)
}

// Edges returns every edge ordered by A, then B
func (c Connections) Edges() []Edge {
	edges := make([]Edge, 0, len(c.edges))
	for e := range c.edges {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(x, y Edge) int {
		if r := x.A.Compare(y.A); r != 0 {
			return r
		}
		return x.B.Compare(y.B)
	})
	return edges
}

// Neighbors returns the coordinates linked to point, sorted
func (c Connections) Neighbors(point Coordinate) []Coordinate {
	var out []Coordinate
	for e := range c.edges {
		switch point {
		case e.A:
			out = append(out, e.B)
		case e.B:
			out = append(out, e.A)
		}
	}
	slices.SortFunc(out, Coordinate.Compare)
	return out
}

// DeriveConnections links every pair of distinct points no further apart
// than radius. Every ordered pair is visited, so this is O(n^2) in len(points).
func DeriveConnections(points []Coordinate, radius float64) Connections {
	result := Connections{edges: make(map[Edge]struct{})}
	for _, a := range points {
		for _, b := range points {
			if a == b {
				continue
			}
			if result.Has(a, b) {
				continue
			}
			if WithinRadius(a, b, radius) {
				result.edges[NewEdge(a, b)] = struct{}{}
			}
		}
	}
	return result
}
