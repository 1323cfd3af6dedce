package internal

// Points are values. Two points with the same coordinates are the same site,
// which lets them be used directly as map keys. Never derive a point by
// arithmetic and expect it to match an input point.
type Point struct {
	X float64
	Y float64
}

// An unordered pair of points. Always build with NewEdge so that the endpoints
// are in canonical order and the same geometric edge compares equal.
type Edge struct {
	A, B Point
}

// Vertices are stored counterclockwise, starting from the lexicographically
// smallest vertex. The circumcircle is computed once by NewTriangle and cached.
// Triangles touching a super vertex have no circumcircle and an infinite
// RadiusSquared.
type Triangle struct {
	A, B, C       Point
	Center        Point
	RadiusSquared float64
}

// Canonical identity of a triangle. Congruent triangles have equal keys.
type TriangleKey [3]Point

type PointSet map[Point]struct{}

type TriangleSet map[TriangleKey]struct{}
