package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTriangle(t *testing.T, a, b, c Point) Triangle {
	t.Helper()
	tri, err := NewTriangle(a, b, c)
	require.NoError(t, err)
	return tri
}

func TestMesh_AddRemoveTriangle(t *testing.T) {
	m := NewMesh()
	lower := mustTriangle(t, Point{0, 0}, Point{10, 0}, Point{10, 10})
	upper := mustTriangle(t, Point{0, 0}, Point{10, 10}, Point{0, 10})
	diagonal := NewEdge(Point{0, 0}, Point{10, 10})

	m.AddTriangle(lower)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.EdgeCount(diagonal))
	assert.True(t, m.IsBoundaryEdge(diagonal))

	m.AddTriangle(upper)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2, m.EdgeCount(diagonal))
	assert.False(t, m.IsBoundaryEdge(diagonal))

	// Adding again is a no-op
	m.AddTriangle(upper)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2, m.EdgeCount(diagonal))

	assert.Equal(t, []Triangle{lower, upper}, m.TrianglesContaining(Point{0, 0}))
	assert.Equal(t, []Triangle{lower}, m.TrianglesContaining(Point{10, 0}))
	assert.Empty(t, m.TrianglesContaining(Point{5, 5}))

	m.RemoveTriangle(lower)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.EdgeCount(diagonal))
	assert.Equal(t, 0, m.EdgeCount(NewEdge(Point{0, 0}, Point{10, 0})))
	assert.Empty(t, m.TrianglesContaining(Point{10, 0}))

	// Removing something that isn't there is a no-op
	m.RemoveTriangle(lower)
	assert.Equal(t, 1, m.Len())

	m.RemoveTriangle(upper)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.edges)
	assert.Empty(t, m.incident)
}

func TestMesh_Triangles_Sorted(t *testing.T) {
	m := NewMesh()
	a := mustTriangle(t, Point{5, 5}, Point{9, 5}, Point{5, 9})
	b := mustTriangle(t, Point{0, 0}, Point{1, 0}, Point{0, 1})
	m.AddTriangle(a)
	m.AddTriangle(b)
	assert.Equal(t, []Triangle{b, a}, m.Triangles())
}

func TestMesh_ExportReal(t *testing.T) {
	super := [3]Point{{-100, -100}, {100, -100}, {0, 100}}
	m := newMeshWithSuper(super)
	require.Equal(t, 1, m.Len())
	assert.True(t, m.HasSuperVertices())
	assert.True(t, m.IsSuperVertex(Point{0, 100}))
	assert.False(t, m.IsSuperVertex(Point{0, 0}))

	// Surround a real triangle with triangles touching the super vertices
	a, b, c := Point{0, 0}, Point{10, 0}, Point{0, 10}
	for _, p := range []Point{a, b, c} {
		m.addPoint(p)
	}
	m.RemoveTriangle(m.Triangles()[0])
	inner := mustTriangle(t, a, b, c)
	m.AddTriangle(inner)
	m.AddTriangle(mustTriangle(t, a, b, super[0]))
	m.AddTriangle(mustTriangle(t, b, c, super[1]))
	m.AddTriangle(mustTriangle(t, c, a, super[0]))

	result := m.ExportReal()
	assert.Equal(t, []Point{a, b, c}, result.Points)
	assert.Equal(t, []Triangle{inner}, result.Triangles)
	assert.ElementsMatch(t, []Edge{NewEdge(a, b), NewEdge(b, c), NewEdge(c, a)}, result.Edges)

	// Exporting doesn't change anything
	assert.Equal(t, result, m.ExportReal())
	assert.Equal(t, 4, m.Len())

	m.removeSuper()
	assert.False(t, m.HasSuperVertices())
	assert.False(t, m.IsSuperVertex(super[0]))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, result, m.ExportReal())
}

func TestMesh_Points(t *testing.T) {
	m := NewMesh()
	assert.True(t, m.addPoint(Point{3, 3}))
	assert.True(t, m.addPoint(Point{1, 1}))
	assert.False(t, m.addPoint(Point{3, 3}))
	assert.True(t, m.HasPoint(Point{1, 1}))
	// Insertion order
	assert.Equal(t, []Point{{3, 3}, {1, 1}}, m.Points())

	// The slice is a copy
	points := m.Points()
	points[0] = Point{9, 9}
	assert.Equal(t, Point{3, 3}, m.Points()[0])
}
