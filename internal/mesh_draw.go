package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the drawing so hull points aren't on the border
const drawPadding = 40

// Triangle fill colors, cycled in canonical triangle order
var palette = [][3]float64{
	{1, 0, 0},      // red
	{0, 0, 1},      // blue
	{0, 0.5, 0},    // green
	{1, 1, 0},      // yellow
	{1, 0.65, 0},   // orange
	{0.5, 0, 0.5},  // purple
	{1, 0.75, 0.8}, // pink
	{0, 1, 1},      // cyan
}

// Render a triangulation, optionally with Voronoi cells, onto a new context.
// The y axis points up. Open cell chains are drawn as polylines; nothing is
// clipped beyond the canvas.
func DrawResult(result Result, cells map[Point]Cell, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range result.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(result.Points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for i, t := range result.Triangles {
		color := palette[i%len(palette)]
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		c.SetRGBA(color[0], color[1], color[2], 0.5)
		c.Fill()
	}

	c.SetLineWidth(1.5)
	c.SetRGB(1, 1, 1)
	for _, e := range result.Edges {
		c.DrawLine(e.A.X, e.A.Y, e.B.X, e.B.Y)
	}
	c.Stroke()

	if cells != nil {
		c.SetRGBA(1, 0.2, 0.2, 0.9)
		for _, p := range result.Points {
			cell, ok := cells[p]
			if !ok || len(cell.Vertices) == 0 {
				continue
			}
			c.MoveTo(cell.Vertices[0].X, cell.Vertices[0].Y)
			for _, v := range cell.Vertices[1:] {
				c.LineTo(v.X, v.Y)
			}
			if !cell.Open {
				c.ClosePath()
			}
			c.Stroke()
		}
	}

	c.SetRGB(1, 1, 1)
	for _, p := range result.Points {
		c.DrawCircle(p.X, p.Y, 3/scale)
	}
	c.Fill()
	return c
}

// Helper to draw and print the real part of the mesh in the terminal (iTerm
// only) for debugging.
func (m *Mesh) dbgDraw(scale float64) {
	c := DrawResult(m.ExportReal(), nil, scale)
	c.SavePNG("/tmp/mesh.png")
	imgcat.CatFile("/tmp/mesh.png", os.Stdout)
}
