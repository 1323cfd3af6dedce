package internal

import (
	"math"

	"github.com/pkg/errors"
)

// The externally consumed snapshot of a triangulation. Points are in
// insertion order; edges and triangles are in canonical order and reference
// only real points.
type Result struct {
	Points    []Point
	Edges     []Edge
	Triangles []Triangle
}

// Triangles as index triples into Points.
func (r Result) Indices() [][3]int {
	index := make(map[Point]int, len(r.Points))
	for i, p := range r.Points {
		index[p] = i
	}
	result := make([][3]int, len(r.Triangles))
	for i, t := range r.Triangles {
		result[i] = [3]int{index[t.A], index[t.B], index[t.C]}
	}
	return result
}

func (r Result) Area() float64 {
	var area float64
	for _, t := range r.Triangles {
		area += t.Area()
	}
	return area
}

// Check that the result is a Delaunay triangulation of its points:
//
// 1. Every triangle is counterclockwise with nonzero area, over known points.
// 2. The edge set is exactly the set of triangle edges.
// 3. No point lies strictly inside any triangle's circumcircle.
// 4. The triangle areas sum to the area of the convex hull.
func (r Result) Validate() error {
	known := make(PointSet, len(r.Points))
	for _, p := range r.Points {
		known.Add(p)
	}

	edges := make(map[Edge]struct{})
	for _, t := range r.Triangles {
		if Orient(t.A, t.B, t.C) != CounterClockwise {
			return errors.Wrapf(ErrInvalidResult, "%s is not counterclockwise", t)
		}
		for _, p := range t.Points() {
			if !known.Contains(p) {
				return errors.Wrapf(ErrInvalidResult, "%s uses unknown point (%g, %g)", t, p.X, p.Y)
			}
		}
		for _, e := range t.Edges() {
			edges[e] = struct{}{}
		}
	}
	if len(edges) != len(r.Edges) {
		return errors.Wrapf(ErrInvalidResult, "%d edges reported, triangles have %d", len(r.Edges), len(edges))
	}
	for _, e := range r.Edges {
		if _, ok := edges[e]; !ok {
			return errors.Wrapf(ErrInvalidResult, "edge (%g, %g)-(%g, %g) belongs to no triangle", e.A.X, e.A.Y, e.B.X, e.B.Y)
		}
	}

	for _, t := range r.Triangles {
		for _, p := range r.Points {
			if !t.HasVertex(p) && t.InCircumcircle(p) {
				return errors.Wrapf(ErrInvalidResult, "(%g, %g) is inside the circumcircle of %s", p.X, p.Y, t)
			}
		}
	}

	hullArea := PolygonArea(ConvexHull(r.Points))
	if area := r.Area(); math.Abs(area-hullArea) > Epsilon*math.Max(1, hullArea) {
		return errors.Wrapf(ErrInvalidResult, "triangles cover %g, convex hull is %g", area, hullArea)
	}
	return nil
}
