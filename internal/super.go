package internal

import "math"

// The super-triangle is symbolic. Its stored vertices sit at
// center + scale*superDirections[i], but the predicates treat them as if scale
// were infinite. A finite super vertex can land inside the circumcircle of a
// real triangle with a huge radius (nearly collinear hull points), and that
// triangle would then never be created. Taking the limit instead makes every
// real Delaunay triangle reachable, whatever the size of its circle.
//
// The directions all have the same length and are counterclockwise, in the
// order the vertices are stored in the mesh.
var superDirections = [3]Point{{-4, -3}, {4, -3}, {0, 5}}

// Cap on the super-triangle scale, so that its vertices stay finite.
const maxSuperScale = math.MaxFloat64 / 16

// Center and scale of a super-triangle enclosing the box between the two
// corners.
func superBounds(min, max Point) (Point, float64) {
	if max.X < min.X {
		min.X, max.X = max.X, min.X
	}
	if max.Y < min.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	// Halve first so that wide boxes don't overflow
	center := Point{min.X/2 + max.X/2, min.Y/2 + max.Y/2}
	size := math.Max(max.X-min.X, max.Y-min.Y)
	size = math.Max(size, math.Max(math.Abs(center.X), math.Abs(center.Y)))
	if size == 0 {
		size = 1
	}
	return center, math.Min(SuperTriangleMargin*size, maxSuperScale)
}

func superVertices(center Point, scale float64) [3]Point {
	var vertices [3]Point
	for i, d := range superDirections {
		vertices[i] = Point{center.X + scale*d.X, center.Y + scale*d.Y}
	}
	return vertices
}

// Outward normal of the super edge from vertex i to vertex i+1.
func superNormal(i int) Point {
	d, e := superDirections[i], superDirections[(i+1)%3]
	return Point{e.Y - d.Y, d.X - e.X}
}

// Index of p among the super vertices, or -1.
func (m *Mesh) superIndex(p Point) int {
	if !m.hasSuper {
		return -1
	}
	for i, s := range m.super {
		if p == s {
			return i
		}
	}
	return -1
}

func (m *Mesh) superCount(t Triangle) int {
	n := 0
	for _, p := range t.Points() {
		if m.superIndex(p) >= 0 {
			n++
		}
	}
	return n
}

// Is p strictly inside the stored super-triangle?
func (bw *BowyerWatson) contains(p Point) bool {
	dx, dy := p.X-bw.center.X, p.Y-bw.center.Y
	for i, d := range superDirections {
		n := superNormal(i)
		if !(dx*n.X+dy*n.Y < bw.scale*(d.X*n.X+d.Y*n.Y)) {
			return false
		}
	}
	return true
}

// Is p strictly inside the circumcircle of t, with the super vertices taken to
// infinity?
func (bw *BowyerWatson) inCircumcircle(t Triangle, p Point) bool {
	m := bw.mesh
	a, b, c := t.A, t.B, t.C
	switch m.superCount(t) {
	case 0:
		return t.InCircumcircle(p)
	case 1:
		for m.superIndex(c) < 0 {
			a, b, c = b, c, a
		}
		// The circle opens up into the whole half-plane left of ab. On the
		// line itself, only the segment between a and b is inside.
		switch Orient(a, b, p) {
		case CounterClockwise:
			return true
		case Clockwise:
			return false
		}
		return Between(a, b, p)
	case 2:
		for m.superIndex(a) >= 0 {
			a, b, c = b, c, a
		}
		// The circle opens up into the half-plane beyond a, bounded by the
		// line through a parallel to the super edge bc. On that line, points
		// closer to the center than a are inside.
		n := superNormal(m.superIndex(b))
		dx, dy := p.X-a.X, p.Y-a.Y
		switch signOf(dx*n.X+dy*n.Y, math.Abs(dx*n.X)+math.Abs(dy*n.Y), Epsilon) {
		case 1:
			return true
		case -1:
			return false
		}
		da := bw.center.DistanceSquared(a)
		dp := bw.center.DistanceSquared(p)
		return signOf(da-dp, da+dp, Epsilon) > 0
	}
	return true
}

// Orientation of uvp, with the super vertices taken to infinity. p is always
// real.
func (bw *BowyerWatson) orient(u, v, p Point) Orientation {
	i, j := bw.mesh.superIndex(u), bw.mesh.superIndex(v)
	switch {
	case i < 0 && j < 0:
		return Orient(u, v, p)
	case i >= 0 && j >= 0:
		if j == (i+1)%3 {
			return CounterClockwise
		}
		return Clockwise
	case i >= 0:
		return bw.orientFrom(i, v, p)
	}
	return bw.orientFrom(j, p, u)
}

// Orientation of (super vertex i, a, b). Dominated by the direction of i; when
// that is parallel to ab, the center decides.
func (bw *BowyerWatson) orientFrom(i int, a, b Point) Orientation {
	d := superDirections[i]
	wx, wy := a.X-b.X, a.Y-b.Y
	switch signOf(d.X*wy-d.Y*wx, math.Abs(d.X*wy)+math.Abs(d.Y*wx), Epsilon) {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	}
	return Orient(bw.center, a, b)
}
