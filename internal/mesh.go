package internal

// The mesh is an arena of triangles keyed by their canonical identity. Edges
// are never stored independently: the edge index (edge -> number of incident
// triangles) and the vertex index (point -> incident triangles) are updated
// inside AddTriangle and RemoveTriangle, so they always correspond exactly to
// the current triangles.
//
// The mesh is not safe for concurrent mutation. It is owned by a single
// engine.
type Mesh struct {
	triangles map[TriangleKey]Triangle
	edges     map[Edge]int
	incident  map[Point]TriangleSet

	// Real points in insertion order
	points   []Point
	pointSet PointSet

	// Vertices of the bootstrapping super-triangle, if any
	super    [3]Point
	hasSuper bool
}

func NewMesh() *Mesh {
	return &Mesh{
		triangles: make(map[TriangleKey]Triangle),
		edges:     make(map[Edge]int),
		incident:  make(map[Point]TriangleSet),
		pointSet:  make(PointSet),
	}
}

// Create a mesh seeded with a single super-triangle. The vertices must be
// counterclockwise and in the order of superDirections.
func newMeshWithSuper(super [3]Point) *Mesh {
	m := NewMesh()
	m.super = super
	m.hasSuper = true
	m.AddTriangle(openTriangle(super[0], super[1], super[2]))
	return m
}

func (m *Mesh) AddTriangle(t Triangle) {
	key := t.Key()
	if _, ok := m.triangles[key]; ok {
		return
	}
	m.triangles[key] = t
	for _, e := range t.Edges() {
		m.edges[e]++
	}
	for _, p := range t.Points() {
		set, ok := m.incident[p]
		if !ok {
			set = make(TriangleSet)
			m.incident[p] = set
		}
		set[key] = struct{}{}
	}
}

func (m *Mesh) RemoveTriangle(t Triangle) {
	key := t.Key()
	if _, ok := m.triangles[key]; !ok {
		return
	}
	delete(m.triangles, key)
	for _, e := range t.Edges() {
		m.edges[e]--
		if m.edges[e] <= 0 {
			delete(m.edges, e)
		}
	}
	for _, p := range t.Points() {
		set := m.incident[p]
		delete(set, key)
		if len(set) == 0 {
			delete(m.incident, p)
		}
	}
}

// Record a real point. Returns false if it was already present.
func (m *Mesh) addPoint(p Point) bool {
	if m.pointSet.Contains(p) {
		return false
	}
	m.pointSet.Add(p)
	m.points = append(m.points, p)
	return true
}

func (m *Mesh) HasPoint(p Point) bool {
	return m.pointSet.Contains(p)
}

// Real points in insertion order.
func (m *Mesh) Points() []Point {
	return append([]Point(nil), m.points...)
}

func (m *Mesh) Len() int {
	return len(m.triangles)
}

// All triangles, including any touching the super-triangle, in canonical
// order.
func (m *Mesh) Triangles() []Triangle {
	result := make([]Triangle, 0, len(m.triangles))
	for _, t := range m.triangles {
		result = append(result, t)
	}
	sortTriangles(result)
	return result
}

// Triangles incident to p, in canonical order.
func (m *Mesh) TrianglesContaining(p Point) []Triangle {
	set := m.incident[p]
	result := make([]Triangle, 0, len(set))
	for key := range set {
		result = append(result, m.triangles[key])
	}
	sortTriangles(result)
	return result
}

// Number of triangles sharing the edge: 0, 1 (boundary) or 2 (interior).
func (m *Mesh) EdgeCount(e Edge) int {
	return m.edges[e]
}

func (m *Mesh) IsBoundaryEdge(e Edge) bool {
	return m.edges[e] == 1
}

func (m *Mesh) HasSuperVertices() bool {
	return m.hasSuper
}

func (m *Mesh) IsSuperVertex(p Point) bool {
	return m.superIndex(p) >= 0
}

func (m *Mesh) touchesSuper(t Triangle) bool {
	return m.IsSuperVertex(t.A) || m.IsSuperVertex(t.B) || m.IsSuperVertex(t.C)
}

// Drop every triangle referencing a super vertex, then forget the vertices.
func (m *Mesh) removeSuper() {
	if !m.hasSuper {
		return
	}
	for _, t := range m.Triangles() {
		if m.touchesSuper(t) {
			m.RemoveTriangle(t)
		}
	}
	m.hasSuper = false
}

// Snapshot of the mesh with every element touching a super vertex excluded.
// Points come in insertion order, edges and triangles in canonical order, so
// repeated exports of the same mesh are identical.
func (m *Mesh) ExportReal() Result {
	result := Result{
		Points:    m.Points(),
		Edges:     []Edge{},
		Triangles: []Triangle{},
	}
	seen := make(map[Edge]struct{})
	for _, t := range m.Triangles() {
		if m.touchesSuper(t) {
			continue
		}
		result.Triangles = append(result.Triangles, t)
		for _, e := range t.Edges() {
			if _, ok := seen[e]; !ok {
				seen[e] = struct{}{}
				result.Edges = append(result.Edges, e)
			}
		}
	}
	sortEdges(result.Edges)
	return result
}
