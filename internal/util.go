package internal

import "math"

// Relative tolerance for orientation tests. A determinant counts as zero when
// it is within Epsilon of the sum of the magnitudes of its terms, so the test
// behaves the same at any coordinate scale.
const Epsilon = 1e-9

// Relative tolerance for the in-circle determinant. Its terms are products of
// three differences, so rounding noise is much smaller relative to their sum
// than Epsilon, and a looser bound would wrongly merge nearly flat triangles
// with their neighbours.
const CocircularEpsilon = 1e-14

type Orientation int

const (
	Collinear Orientation = iota
	CounterClockwise
	Clockwise
)

func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "ccw"
	case Clockwise:
		return "cw"
	}
	return "collinear"
}

// Twice the signed area of abc. Positive when counterclockwise.
func SignedArea(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func Orient(a, b, c Point) Orientation {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	switch signOf(bx*cy-by*cx, math.Abs(bx*cy)+math.Abs(by*cx), Epsilon) {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	}
	return Collinear
}

// Sign of a determinant, treating it as zero when it is within tolerance of
// magnitude.
func signOf(det, magnitude, tolerance float64) int {
	switch {
	case det > tolerance*magnitude:
		return 1
	case det < -tolerance*magnitude:
		return -1
	}
	return 0
}

// Is p strictly inside the circle through a, b and c? The triangle abc must be
// counterclockwise. Cocircular points, within CocircularEpsilon, are outside.
func InCircle(a, b, c, p Point) bool {
	adx, ady := a.X-p.X, a.Y-p.Y
	bdx, bdy := b.X-p.X, b.Y-p.Y
	cdx, cdy := c.X-p.X, c.Y-p.Y
	al := adx*adx + ady*ady
	bl := bdx*bdx + bdy*bdy
	cl := cdx*cdx + cdy*cdy

	det := al*(bdx*cdy-cdx*bdy) + bl*(cdx*ady-adx*cdy) + cl*(adx*bdy-bdx*ady)
	magnitude := al*(math.Abs(bdx*cdy)+math.Abs(cdx*bdy)) +
		bl*(math.Abs(cdx*ady)+math.Abs(adx*cdy)) +
		cl*(math.Abs(adx*bdy)+math.Abs(bdx*ady))
	return signOf(det, magnitude, CocircularEpsilon) > 0
}

// Is p strictly between a and b? Only meaningful when the three are collinear.
func Between(a, b, p Point) bool {
	return (p.X-a.X)*(b.X-a.X)+(p.Y-a.Y)*(b.Y-a.Y) > 0 &&
		(p.X-b.X)*(a.X-b.X)+(p.Y-b.Y)*(a.Y-b.Y) > 0
}

func Circumcenter(a, b, c Point) (Point, error) {
	if Orient(a, b, c) == Collinear {
		return Point{}, ErrDegenerateTriangle
	}
	d := 2 * SignedArea(a, b, c)
	// Solve relative to a to keep the magnitudes small.
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	return Point{
		X: a.X + (cy*b2-by*c2)/d,
		Y: a.Y + (bx*c2-cx*b2)/d,
	}, nil
}

func NewEdge(a, b Point) Edge {
	if b.Less(a) {
		return Edge{b, a}
	}
	return Edge{a, b}
}

func (e Edge) Has(p Point) bool {
	return e.A == p || e.B == p
}

// The endpoint that isn't p. Only meaningful when e.Has(p).
func (e Edge) Other(p Point) Point {
	if e.A == p {
		return e.B
	}
	return e.A
}

func (e Edge) Less(other Edge) bool {
	if e.A != other.A {
		return e.A.Less(other.A)
	}
	return e.B.Less(other.B)
}

// Lexicographic ordering: by X, then by Y.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) DistanceSquared(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

// Shoelace area of a simple polygon. Positive when counterclockwise.
func PolygonArea(points []Point) float64 {
	var area float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

// Andrew's monotone chain. Returns the hull counterclockwise, without
// collinear points, starting from the lexicographically smallest point.
func ConvexHull(points []Point) []Point {
	set := make(PointSet, len(points))
	sorted := make([]Point, 0, len(points))
	for _, p := range points {
		if !set.Contains(p) {
			set.Add(p)
			sorted = append(sorted, p)
		}
	}
	sortPoints(sorted)
	if len(sorted) < 3 {
		return sorted
	}

	hull := make([]Point, 0, 2*len(sorted))
	// Lower chain
	for _, p := range sorted {
		for len(hull) >= 2 && Orient(hull[len(hull)-2], hull[len(hull)-1], p) != CounterClockwise {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper chain
	lowerLen := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lowerLen && Orient(hull[len(hull)-2], hull[len(hull)-1], p) != CounterClockwise {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// The last point repeats the first
	return hull[:len(hull)-1]
}

// Treat a slice as a circular buffer. Unlike the raw modulo operator, this
// only gives non-negative values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
