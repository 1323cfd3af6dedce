package internal

import "github.com/pkg/errors"

// Voronoi cells as the dual of a finished Delaunay mesh. The cell of a site is
// bounded by the circumcenters of the triangles incident to the site, taken in
// fan order around it. Sites on the convex hull have unbounded cells; their
// circumcenters form an open chain, and it's up to the caller to clip or close
// it.
type Cell struct {
	Site     Point
	Vertices []Point
	// The chain is open: the cell is unbounded and there is no edge from the
	// last vertex back to the first.
	Open bool
}

// Cells for every real point of the mesh. The mesh must not contain a
// super-triangle any more.
func Cells(m *Mesh) (map[Point]Cell, error) {
	if m.HasSuperVertices() {
		return nil, errors.WithStack(ErrNotFinalized)
	}
	cells := make(map[Point]Cell, len(m.points))
	for _, site := range m.points {
		cells[site] = m.cell(site)
	}
	return cells, nil
}

func (m *Mesh) cell(site Point) Cell {
	fan := m.TrianglesContaining(site)
	if len(fan) == 0 {
		// An isolated site (fewer than three non-collinear points) has no
		// neighbors to bound it.
		return Cell{Site: site, Open: true}
	}

	// Around the site, each triangle spans from its first edge to its second,
	// counterclockwise, and the next triangle starts where it ends.
	byFirst := make(map[Point]Triangle, len(fan))
	for _, t := range fan {
		first, _ := t.Around(site)
		byFirst[first] = t
	}

	// On the hull, the walk must start at the triangle whose first edge is on
	// the boundary. Otherwise any start will do.
	start := fan[0]
	open := false
	for _, t := range fan {
		first, _ := t.Around(site)
		if m.IsBoundaryEdge(NewEdge(site, first)) {
			start = t
			open = true
			break
		}
	}

	vertices := make([]Point, 0, len(fan))
	t := start
	for range fan {
		vertices = append(vertices, t.Center)
		_, second := t.Around(site)
		next, ok := byFirst[second]
		if !ok || next.Key() == start.Key() {
			break
		}
		t = next
	}
	return Cell{Site: site, Vertices: vertices, Open: open}
}
