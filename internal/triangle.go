package internal

import (
	"fmt"
	"math"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

// Build a canonical triangle from three points, in any order. Collinear points
// give ErrDegenerateTriangle.
func NewTriangle(a, b, c Point) (Triangle, error) {
	switch Orient(a, b, c) {
	case Collinear:
		return Triangle{}, ErrDegenerateTriangle
	case Clockwise:
		b, c = c, b
	}

	// Rotate so the smallest vertex is first. Rotation preserves winding.
	for b.Less(a) || c.Less(a) {
		a, b, c = b, c, a
	}

	center, err := Circumcenter(a, b, c)
	if err != nil {
		return Triangle{}, err
	}
	return Triangle{
		A:             a,
		B:             b,
		C:             c,
		Center:        center,
		RadiusSquared: center.DistanceSquared(a),
	}, nil
}

// Build a canonical triangle from vertices already known to be
// counterclockwise, without a circumcircle. Used for triangles touching a
// super vertex, whose circumcircle is unbounded: RadiusSquared is +Inf and
// Center is unset.
func openTriangle(a, b, c Point) Triangle {
	for b.Less(a) || c.Less(a) {
		a, b, c = b, c, a
	}
	return Triangle{A: a, B: b, C: c, RadiusSquared: math.Inf(1)}
}

func (t Triangle) Key() TriangleKey {
	return TriangleKey{t.A, t.B, t.C}
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Edges in counterclockwise order: AB, BC, CA.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.A, t.B), NewEdge(t.B, t.C), NewEdge(t.C, t.A)}
}

// Directed edges in counterclockwise order. The interior is on the left of
// each one.
func (t Triangle) DirectedEdges() [3][2]Point {
	return [3][2]Point{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// The other two vertices, in counterclockwise order starting after p. Only
// meaningful when p is a vertex.
func (t Triangle) Around(p Point) (Point, Point) {
	switch p {
	case t.A:
		return t.B, t.C
	case t.B:
		return t.C, t.A
	}
	return t.A, t.B
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

func (t Triangle) HasEdge(e Edge) bool {
	return t.HasVertex(e.A) && t.HasVertex(e.B)
}

// Is p strictly inside the circumcircle? Points within tolerance of the circle
// count as outside, so cocircular points never trigger a rebuild. The test
// works on the vertices directly; Center and RadiusSquared are only kept for
// callers that need the circle itself.
func (t Triangle) InCircumcircle(p Point) bool {
	return InCircle(t.A, t.B, t.C, p)
}

// Is p inside the triangle or on its boundary?
func (t Triangle) Contains(p Point) bool {
	return Orient(t.A, t.B, p) != Clockwise &&
		Orient(t.B, t.C, p) != Clockwise &&
		Orient(t.C, t.A, p) != Clockwise
}

// Is p strictly inside the triangle, away from its edges?
func (t Triangle) ContainsStrictly(p Point) bool {
	return Orient(t.A, t.B, p) == CounterClockwise &&
		Orient(t.B, t.C, p) == CounterClockwise &&
		Orient(t.C, t.A, p) == CounterClockwise
}

func (t Triangle) Area() float64 {
	return SignedArea(t.A, t.B, t.C) / 2
}

func (t Triangle) Centroid() Point {
	return Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle %s [(%g, %g) (%g, %g) (%g, %g)]",
		dbg.Name(t.Key()),
		t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y,
	)
}

// Debug name, colored by whether the triangle touches the super-triangle.
func (t Triangle) DbgName(m *Mesh) string {
	name := dbg.Name(t.Key())
	if m != nil && m.touchesSuper(t) {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}

func (k TriangleKey) Less(other TriangleKey) bool {
	for i := range k {
		if k[i] != other[i] {
			return k[i].Less(other[i])
		}
	}
	return false
}

func sortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Less(edges[j])
	})
}

func sortTriangles(triangles []Triangle) {
	sort.Slice(triangles, func(i, j int) bool {
		return triangles[i].Key().Less(triangles[j].Key())
	})
}

func sortDirected(edges [][2]Point) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0].Less(edges[j][0])
		}
		return edges[i][1].Less(edges[j][1])
	})
}
