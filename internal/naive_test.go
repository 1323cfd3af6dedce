package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaive_ThreePoints(t *testing.T) {
	n := NewNaive(0)
	assert.Equal(t, DefaultNaiveCapacity, n.Capacity())
	points := []Point{{1, 1}, {9, 2}, {4, 8}}
	for _, p := range points {
		require.NoError(t, n.AddPoint(p))
	}
	result := n.Triangulate()
	require.Len(t, result.Triangles, 1)
	assert.Len(t, result.Edges, 3)
	assert.Equal(t, points, result.Points)
}

func TestNaive_Capacity(t *testing.T) {
	n := NewNaive(3)
	for _, p := range []Point{{0, 0}, {1, 0}, {0, 1}} {
		require.NoError(t, n.AddPoint(p))
	}
	err := n.AddPoint(Point{1, 1})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 3, n.Len())
	assert.Len(t, n.Triangulate().Triangles, 1)
}

func TestNaive_RejectedPoints(t *testing.T) {
	n := NewNaive(10)
	require.NoError(t, n.AddPoint(Point{2, 2}))
	assert.ErrorIs(t, n.AddPoint(Point{2, 2}), ErrDuplicatePoint)
	assert.ErrorIs(t, n.AddPoint(Point{math.Inf(1), 2}), ErrNonFinitePoint)
	assert.Equal(t, 1, n.Len())
}

func TestNaive_Collinear(t *testing.T) {
	result := triangulateNaive([]Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	assert.Empty(t, result.Triangles)
	assert.Empty(t, result.Edges)
}

func TestNaive_LonePoint(t *testing.T) {
	result := triangulateNaive([]Point{{4, 4}})
	assert.Equal(t, []Point{{4, 4}}, result.Points)
	assert.Empty(t, result.Triangles)
}

func TestNaive_SquareTie(t *testing.T) {
	// Cocircular points are not tie-broken: no corner is strictly inside any
	// circle, so both diagonals' triangles survive.
	result := triangulateNaive(Square())
	assert.Len(t, result.Triangles, 4)
	assert.Error(t, result.Validate())
}

func TestNaive_SquareWithCenter(t *testing.T) {
	points := SquareWithCenter()
	result := triangulateNaive(points)
	assert.Len(t, result.Triangles, 4)
	AssertValidTriangulation(t, points, result)
}

func TestNaive_Remesh(t *testing.T) {
	n := NewNaive(10)
	for _, p := range []Point{{0, 0}, {4, 0}, {0, 4}} {
		require.NoError(t, n.AddPoint(p))
	}
	first := n.Mesh()
	assert.Same(t, first, n.Mesh(), "mesh is cached until points change")

	require.NoError(t, n.AddPoint(Point{4, 4.5}))
	assert.NotSame(t, first, n.Mesh())
	assert.Equal(t, 2, n.Mesh().Len())
}

// The brute force engine is the oracle for the incremental one.
func TestNaive_MatchesBowyerWatson(t *testing.T) {
	t.Run("fixtures", func(t *testing.T) {
		for _, name := range []string{"scatter", "hexagon"} {
			points := LoadFixture(name)
			bw, err := triangulateBowyerWatson(points)
			require.NoError(t, err)
			assert.Equal(t, triangleKeys(triangulateNaive(points).Triangles), triangleKeys(bw.Export().Triangles), name)
		}
	})

	for seed := int64(1); seed <= 20; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			t.Parallel()
			points := RandomPoints(seed, 3+int(seed%10), 100)
			naive := triangulateNaive(points)
			bw, err := triangulateBowyerWatson(points)
			require.NoError(t, err)
			incremental := bw.Export()

			assert.Equal(t, triangleKeys(naive.Triangles), triangleKeys(incremental.Triangles))
			assert.Equal(t, naive.Edges, incremental.Edges)
			AssertValidTriangulation(t, points, naive)
		})
	}
}
