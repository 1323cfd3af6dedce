package delaunay_test

import (
	"fmt"

	"github.com/osuushi/delaunay"
)

func ExampleNewTriangulation() {
	t := delaunay.NewTriangulation(10, 10)
	for _, p := range []delaunay.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}} {
		if err := t.AddPoint(p); err != nil {
			panic(err)
		}
	}
	t.RemoveSuperTriangles()

	result := t.Export()
	fmt.Println(len(result.Triangles), "triangle,", len(result.Edges), "edges")
	fmt.Println(result.Indices())
	// Output:
	// 1 triangle, 3 edges
	// [[0 1 2]]
}
