package internal

import (
	"embed"
	"log"
	"math/rand"
)

// Point sets for tests. SVG fixtures are available by name in the fixtures/
// directory, sans extension. The generators are seeded explicitly; the
// triangulation code itself never touches randomness.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := LoadPointsSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

func Square() []Point {
	return []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
}

// Square corners around a center point. The triangulation is unique.
func SquareWithCenter() []Point {
	return append(Square(), Point{5, 5})
}

// Integer lattice, full of cocircular quadruples.
func Grid(n int) []Point {
	var points []Point
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			points = append(points, Point{float64(x), float64(y)})
		}
	}
	return points
}

// Uniformly scattered points in (0,size)². Real valued coordinates make
// cocircular ties vanishingly unlikely.
func RandomPoints(seed int64, n int, size float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: size * (0.01 + 0.98*rng.Float64()),
			Y: size * (0.01 + 0.98*rng.Float64()),
		}
	}
	return points
}

// Triangulate with Bowyer-Watson and finalize.
func triangulateBowyerWatson(points []Point) (*BowyerWatson, error) {
	bw := NewBowyerWatsonForPoints(points)
	for _, p := range points {
		if err := bw.AddPoint(p); err != nil {
			return bw, err
		}
	}
	bw.RemoveSuperTriangles()
	return bw, nil
}

func triangulateNaive(points []Point) Result {
	n := NewNaive(len(points))
	for _, p := range points {
		if err := n.AddPoint(p); err != nil {
			log.Fatalf("Could not add %v: %v", p, err)
		}
	}
	return n.Triangulate()
}
