package internal

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Incremental Bowyer-Watson insertion. The mesh starts as a single
// super-triangle enclosing the region of interest. Each inserted point removes
// the triangles whose circumcircle contains it ("bad" triangles), leaving a
// star-shaped cavity, and the cavity is refilled with a fan of triangles from
// the cavity boundary to the new point. Only the locally affected triangles
// are rebuilt.

// Scale of the stored super-triangle relative to the bounding box. The
// predicates treat the super vertices as infinitely far away, so this only
// decides which points AddPoint accepts.
const SuperTriangleMargin = 1000

type State int

const (
	Ready State = iota
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Done:
		return "done"
	}
	return "failed"
}

type BowyerWatson struct {
	mesh   *Mesh
	super  Triangle
	center Point
	scale  float64
	state  State
	// Set once an insertion violates the mesh invariants. The run is then
	// aborted and every later call reports it.
	err error
}

// Engine with a super-triangle enclosing [0,width]×[0,height].
func NewBowyerWatson(width, height float64) *BowyerWatson {
	return NewBowyerWatsonForBounds(Point{0, 0}, Point{width, height})
}

// Engine with a super-triangle enclosing the bounding box of the points. The
// points themselves are not inserted.
func NewBowyerWatsonForPoints(points []Point) *BowyerWatson {
	if len(points) == 0 {
		return NewBowyerWatsonForBounds(Point{}, Point{})
	}
	min := Point{math.Inf(1), math.Inf(1)}
	max := Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	if !min.IsFinite() || !max.IsFinite() {
		return NewBowyerWatsonForBounds(Point{}, Point{})
	}
	return NewBowyerWatsonForBounds(min, max)
}

// Engine with a super-triangle enclosing the box between the two corners.
// Non-finite corners, or a box too far out to enclose, give an engine that
// has already failed.
func NewBowyerWatsonForBounds(min, max Point) *BowyerWatson {
	if !min.IsFinite() || !max.IsFinite() {
		return failedBowyerWatson(errors.Wrapf(ErrNonFinitePoint,
			"bounds (%g, %g)-(%g, %g)", min.X, min.Y, max.X, max.Y))
	}
	center, scale := superBounds(min, max)
	vertices := superVertices(center, scale)
	for _, v := range vertices {
		if !v.IsFinite() {
			return failedBowyerWatson(errors.Wrapf(ErrOutsideBounds,
				"bounds (%g, %g)-(%g, %g)", min.X, min.Y, max.X, max.Y))
		}
	}
	return &BowyerWatson{
		mesh:   newMeshWithSuper(vertices),
		super:  openTriangle(vertices[0], vertices[1], vertices[2]),
		center: center,
		scale:  scale,
	}
}

func failedBowyerWatson(err error) *BowyerWatson {
	return &BowyerWatson{
		mesh:  NewMesh(),
		state: Failed,
		err:   err,
	}
}

func (bw *BowyerWatson) State() State {
	return bw.state
}

// The error that aborted the run, if any.
func (bw *BowyerWatson) Err() error {
	return bw.err
}

func (bw *BowyerWatson) Mesh() *Mesh {
	return bw.mesh
}

func (bw *BowyerWatson) SuperTriangle() Triangle {
	return bw.super
}

// Insert a point. Duplicates, non-finite points and points outside the
// super-triangle are rejected without touching the mesh. An invariant
// violation aborts the run.
func (bw *BowyerWatson) AddPoint(p Point) (err error) {
	switch bw.state {
	case Failed:
		return bw.err
	case Done:
		return errors.Wrapf(ErrFinalized, "cannot add (%g, %g)", p.X, p.Y)
	}
	if !p.IsFinite() {
		return errors.Wrapf(ErrNonFinitePoint, "(%g, %g)", p.X, p.Y)
	}
	if bw.mesh.HasPoint(p) {
		return errors.Wrapf(ErrDuplicatePoint, "(%g, %g)", p.X, p.Y)
	}
	if !bw.contains(p) {
		return errors.Wrapf(ErrOutsideBounds, "(%g, %g)", p.X, p.Y)
	}

	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			bw.state = Failed
			bw.err = recoveredErr
			err = recoveredErr
		}
	}()
	bw.insert(p)
	return nil
}

func (bw *BowyerWatson) insert(p Point) {
	bad := bw.badTriangles(p)
	if len(bad) == 0 {
		fatalf("no circumcircle contains (%g, %g)", p.X, p.Y)
	}
	boundary := boundaryPolygon(bad)

	if Debug {
		names := make([]string, len(bad))
		for i, t := range bad {
			names[i] = t.DbgName(bw.mesh)
		}
		debugf("insert (%g, %g): bad [%s], cavity of %d edges",
			p.X, p.Y, strings.Join(names, ", "), len(boundary))
	}

	// Build the whole fan before mutating, so a failure leaves the mesh as it
	// was.
	fan := make([]Triangle, 0, len(boundary))
	for _, edge := range boundary {
		u, v := edge[0], edge[1]
		if bw.orient(u, v, p) != CounterClockwise {
			fatalf("cavity is not star-shaped around (%g, %g): edge (%g, %g)-(%g, %g)",
				p.X, p.Y, u.X, u.Y, v.X, v.Y)
		}
		if bw.mesh.IsSuperVertex(u) || bw.mesh.IsSuperVertex(v) {
			fan = append(fan, openTriangle(u, v, p))
			continue
		}
		t, err := NewTriangle(u, v, p)
		if err != nil {
			fatalf("fan triangle around (%g, %g): %v", p.X, p.Y, err)
		}
		fan = append(fan, t)
	}

	for _, t := range bad {
		bw.mesh.RemoveTriangle(t)
	}
	for _, t := range fan {
		bw.mesh.AddTriangle(t)
	}
	bw.mesh.addPoint(p)
}

func (bw *BowyerWatson) badTriangles(p Point) []Triangle {
	var bad []Triangle
	for _, t := range bw.mesh.triangles {
		if bw.inCircumcircle(t, p) {
			bad = append(bad, t)
		}
	}
	sortTriangles(bad)
	return bad
}

// The cavity boundary: directed edges belonging to exactly one bad triangle.
// Directions are inherited from the counterclockwise triangles, so the
// cavity interior is on the left of every edge. Panics unless the edges form
// exactly one closed cycle.
func boundaryPolygon(bad []Triangle) [][2]Point {
	count := make(map[Edge]int)
	directed := make(map[Edge][2]Point)
	for _, t := range bad {
		for _, d := range t.DirectedEdges() {
			e := NewEdge(d[0], d[1])
			count[e]++
			directed[e] = d
		}
	}

	var boundary [][2]Point
	next := make(map[Point]Point)
	for e, n := range count {
		if n != 1 {
			continue
		}
		d := directed[e]
		if _, ok := next[d[0]]; ok {
			fatalf("cavity boundary branches at (%g, %g)", d[0].X, d[0].Y)
		}
		next[d[0]] = d[1]
		boundary = append(boundary, d)
	}
	if len(boundary) < 3 {
		fatalf("cavity boundary has %d edges", len(boundary))
	}

	// Walk the cycle. It must visit every edge exactly once.
	start := boundary[0][0]
	p := start
	for i := 0; i < len(boundary); i++ {
		q, ok := next[p]
		if !ok {
			fatalf("cavity boundary is open at (%g, %g)", p.X, p.Y)
		}
		p = q
		if p == start && i != len(boundary)-1 {
			fatalf("cavity boundary is not a single cycle")
		}
	}
	if p != start {
		fatalf("cavity boundary does not close")
	}

	sortDirected(boundary)
	return boundary
}

// Finalize: drop every triangle touching the super-triangle. What remains is
// the Delaunay triangulation of the convex hull of the inserted points.
func (bw *BowyerWatson) RemoveSuperTriangles() {
	if bw.state != Ready {
		return
	}
	bw.mesh.removeSuper()
	bw.state = Done
}

// Snapshot of the real part of the mesh. Elements touching the super-triangle
// are always excluded, so an export taken before RemoveSuperTriangles already
// matches the final one for the points inserted so far. Finalizing is still
// what removes the artifacts from the mesh itself and ends the run.
func (bw *BowyerWatson) Export() Result {
	return bw.mesh.ExportReal()
}
