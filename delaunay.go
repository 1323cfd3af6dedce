// Incremental planar Delaunay triangulation for Go.
//
// Points are inserted one at a time with the Bowyer-Watson algorithm, starting
// from a synthetic super-triangle that is stripped before the result is
// reported. A brute force O(n⁴) engine produces the same triangulation for
// small inputs and serves as a reference, and the Voronoi cells of the sites
// can be derived from the finished mesh.
package delaunay

import (
	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle
type Mesh = internal.Mesh
type Result = internal.Result
type Cell = internal.Cell
type Triangulation = internal.BowyerWatson
type Naive = internal.Naive

var (
	ErrDegenerateTriangle = internal.ErrDegenerateTriangle
	ErrDuplicatePoint     = internal.ErrDuplicatePoint
	ErrInsertionInvariant = internal.ErrInsertionInvariant
	ErrCapacityExceeded   = internal.ErrCapacityExceeded
	ErrOutsideBounds      = internal.ErrOutsideBounds
	ErrNonFinitePoint     = internal.ErrNonFinitePoint
	ErrFinalized          = internal.ErrFinalized
	ErrNotFinalized       = internal.ErrNotFinalized
	ErrInvalidResult      = internal.ErrInvalidResult
)

type Algorithm int

const (
	BowyerWatson Algorithm = iota
	BruteForce
)

func (a Algorithm) String() string {
	if a == BruteForce {
		return "naive"
	}
	return "bowyer-watson"
}

// Create a triangulation whose super-triangle covers [0,width]×[0,height].
func NewTriangulation(width, height float64) *Triangulation {
	return internal.NewBowyerWatson(width, height)
}

// Create a triangulation whose super-triangle covers the bounding box of the
// points. The points are not inserted.
func NewTriangulationForPoints(points []Point) *Triangulation {
	return internal.NewBowyerWatsonForPoints(points)
}

// Create a brute force triangulation holding at most capacity points. A
// non-positive capacity means the default.
func NewNaive(capacity int) *Naive {
	return internal.NewNaive(capacity)
}

// Voronoi cells of every site of a finished mesh.
func Cells(mesh *Mesh) (map[Point]Cell, error) {
	return internal.Cells(mesh)
}

// Triangulate a point set in one go with the chosen algorithm. Duplicate
// points are skipped. The brute force algorithm is sized to the input, so it
// never runs out of capacity here.
func Triangulate(algorithm Algorithm, points ...Point) (Result, error) {
	switch algorithm {
	case BowyerWatson:
		t := NewTriangulationForPoints(points)
		for _, p := range points {
			if err := t.AddPoint(p); err != nil && !errors.Is(err, ErrDuplicatePoint) {
				return Result{}, err
			}
		}
		t.RemoveSuperTriangles()
		return t.Export(), nil
	case BruteForce:
		n := NewNaive(len(points))
		for _, p := range points {
			if err := n.AddPoint(p); err != nil && !errors.Is(err, ErrDuplicatePoint) {
				return Result{}, err
			}
		}
		return n.Triangulate(), nil
	}
	return Result{}, errors.Errorf("unknown algorithm %d", algorithm)
}
