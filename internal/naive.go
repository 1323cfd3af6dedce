package internal

import "github.com/pkg/errors"

// Brute force Delaunay triangulation, used as a correctness oracle. Every
// triple of points is a candidate triangle, and a candidate is kept iff no
// other point lies strictly inside its circumcircle. That is O(n³) candidates
// with an O(n) check each, so O(n⁴) overall. The cost is the point, so this is
// deliberately not optimized, and the number of points is capped.
//
// Cocircular points are not tie-broken: four points on one circle yield all
// four candidate triangles.

const DefaultNaiveCapacity = 100

type Naive struct {
	points   []Point
	pointSet PointSet
	capacity int
	mesh     *Mesh
}

// A non-positive capacity means DefaultNaiveCapacity.
func NewNaive(capacity int) *Naive {
	if capacity <= 0 {
		capacity = DefaultNaiveCapacity
	}
	return &Naive{
		pointSet: make(PointSet),
		capacity: capacity,
	}
}

func (n *Naive) Capacity() int {
	return n.capacity
}

func (n *Naive) Len() int {
	return len(n.points)
}

func (n *Naive) AddPoint(p Point) error {
	if !p.IsFinite() {
		return errors.Wrapf(ErrNonFinitePoint, "(%g, %g)", p.X, p.Y)
	}
	if n.pointSet.Contains(p) {
		return errors.Wrapf(ErrDuplicatePoint, "(%g, %g)", p.X, p.Y)
	}
	if len(n.points) >= n.capacity {
		return errors.Wrapf(ErrCapacityExceeded, "naive triangulation holds at most %d points", n.capacity)
	}
	n.pointSet.Add(p)
	n.points = append(n.points, p)
	n.mesh = nil
	return nil
}

// Run the exhaustive search over the current points. The mesh is rebuilt from
// scratch on every call after a point has been added.
func (n *Naive) Triangulate() Result {
	return n.Mesh().ExportReal()
}

// The mesh of the last triangulation, computing it if needed.
func (n *Naive) Mesh() *Mesh {
	if n.mesh != nil {
		return n.mesh
	}

	mesh := NewMesh()
	for _, p := range n.points {
		mesh.addPoint(p)
	}

	points := n.points
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			for k := j + 1; k < len(points); k++ {
				t, err := NewTriangle(points[i], points[j], points[k])
				if err != nil {
					// Collinear triples have no circumcircle
					continue
				}
				if n.isEmpty(t) {
					mesh.AddTriangle(t)
				}
			}
		}
	}
	n.mesh = mesh
	return mesh
}

func (n *Naive) isEmpty(t Triangle) bool {
	for _, p := range n.points {
		if !t.HasVertex(p) && t.InCircumcircle(p) {
			return false
		}
	}
	return true
}
