package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a result is a Delaunay triangulation of the points.
// The rules are:
// 1. Every triangle is counterclockwise, with nonzero area, and uses only input points.
// 2. The set of edges equals the set of triangle edges.
// 3. No input point lies strictly inside any triangle's circumcircle.
// 4. The sum of the areas of all triangles equals the area of the convex hull.
func AssertValidTriangulation(t *testing.T, points []Point, result Result) {
	t.Helper()

	inputPoints := make(PointSet)
	for _, p := range points {
		inputPoints.Add(p)
	}
	resultPoints := make(PointSet)
	for _, p := range result.Points {
		resultPoints.Add(p)
	}
	require.True(t, inputPoints.Equals(resultPoints), "result points must equal the input points")

	var area float64
	edges := make(map[Edge]struct{})
	for _, tri := range result.Triangles {
		require.Equal(t, CounterClockwise, Orient(tri.A, tri.B, tri.C), "clockwise triangle: %s", tri)
		require.Greater(t, tri.Area(), 0.0, "zero area triangle: %s", tri)
		for _, p := range tri.Points() {
			require.True(t, inputPoints.Contains(p), "%s uses a point that wasn't inserted", tri)
		}
		for _, e := range tri.Edges() {
			edges[e] = struct{}{}
		}
		area += tri.Area()
	}

	require.Len(t, result.Edges, len(edges), "edge count must match the triangles")
	for _, e := range result.Edges {
		_, ok := edges[e]
		require.True(t, ok, "edge %v belongs to no triangle", e)
	}

	for _, tri := range result.Triangles {
		for _, p := range points {
			if tri.HasVertex(p) {
				continue
			}
			assert.False(t, tri.InCircumcircle(p), "%v is inside the circumcircle of %s", p, tri)
		}
	}

	hullArea := PolygonArea(ConvexHull(points))
	require.InDelta(t, hullArea, area, Epsilon*math.Max(1, hullArea), "triangle areas must sum to the hull area")

	assert.NoError(t, result.Validate())
}

func triangleKeys(triangles []Triangle) []TriangleKey {
	keys := make([]TriangleKey, len(triangles))
	for i, t := range triangles {
		keys[i] = t.Key()
	}
	return keys
}
