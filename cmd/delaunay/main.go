package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of triangulation. Points are read from an SVG file (circle centers and
// polygon vertices) or from stdin, one "x y" pair per line. The result can be
// written to a PNG, optionally with the Voronoi cells drawn over it, and
// printed inline in the terminal (iTerm only).
var (
	algorithm = kingpin.Flag("algorithm", "Triangulation algorithm.").Short('a').Default("bowyer-watson").Enum("bowyer-watson", "naive")
	width     = kingpin.Flag("width", "Width of the region covered by the super-triangle. Zero fits the input.").Default("0").Float64()
	height    = kingpin.Flag("height", "Height of the region covered by the super-triangle. Zero fits the input.").Default("0").Float64()
	capacity  = kingpin.Flag("capacity", "Maximum number of points for the naive algorithm.").Default(strconv.Itoa(internal.DefaultNaiveCapacity)).Int()
	svgFile   = kingpin.Flag("svg", "Read points from an SVG file instead of stdin.").ExistingFile()
	outFile   = kingpin.Flag("out", "Write a PNG rendering of the triangulation.").Short('o').String()
	scale     = kingpin.Flag("scale", "Pixels per unit in the rendering.").Default("5").Float64()
	voronoi   = kingpin.Flag("voronoi", "Draw the Voronoi cells.").Bool()
	cat       = kingpin.Flag("imgcat", "Print the rendering in the terminal.").Bool()
	validate  = kingpin.Flag("validate", "Check the Delaunay and partition properties of the result.").Bool()
	debug     = kingpin.Flag("debug", "Trace insertions on stderr.").Bool()
)

func main() {
	kingpin.CommandLine.HelpFlag.Short('h')
	kingpin.Parse()
	internal.Debug = *debug

	points, err := loadPoints()
	kingpin.FatalIfError(err, "reading points")
	fmt.Printf("Read %s points\n", aurora.Bold(len(points)))

	var (
		result delaunay.Result
		mesh   *delaunay.Mesh
	)
	switch *algorithm {
	case "naive":
		result, mesh, err = runNaive(points)
	default:
		result, mesh, err = runBowyerWatson(points)
	}
	kingpin.FatalIfError(err, "triangulating")
	fmt.Printf("%s: %s triangles, %s edges\n",
		*algorithm, aurora.Green(len(result.Triangles)), aurora.Green(len(result.Edges)))

	if *validate {
		if err := result.Validate(); err != nil {
			fmt.Println(aurora.Red(err.Error()))
			os.Exit(1)
		}
		fmt.Println(aurora.Green("valid Delaunay triangulation"))
	}

	var cells map[delaunay.Point]delaunay.Cell
	if *voronoi {
		cells, err = delaunay.Cells(mesh)
		kingpin.FatalIfError(err, "extracting voronoi cells")
		open := 0
		for _, cell := range cells {
			if cell.Open {
				open++
			}
		}
		fmt.Printf("%s voronoi cells, %s open\n", aurora.Green(len(cells)), aurora.Cyan(open))
	}

	if *outFile == "" && *cat {
		*outFile = "/tmp/delaunay.png"
	}
	if *outFile != "" {
		c := internal.DrawResult(result, cells, *scale)
		kingpin.FatalIfError(c.SavePNG(*outFile), "writing %s", *outFile)
		if *cat {
			imgcat.CatFile(*outFile, os.Stdout)
		}
	}
}

func runBowyerWatson(points []delaunay.Point) (delaunay.Result, *delaunay.Mesh, error) {
	var t *delaunay.Triangulation
	if *width > 0 && *height > 0 {
		t = delaunay.NewTriangulation(*width, *height)
	} else {
		t = delaunay.NewTriangulationForPoints(points)
	}
	for _, p := range points {
		err := t.AddPoint(p)
		switch {
		case err == nil:
		case errors.Is(err, delaunay.ErrDuplicatePoint), errors.Is(err, delaunay.ErrOutsideBounds):
			fmt.Println(aurora.Yellow(fmt.Sprintf("skipped: %v", err)))
		default:
			return delaunay.Result{}, nil, err
		}
	}
	t.RemoveSuperTriangles()
	return t.Export(), t.Mesh(), nil
}

func runNaive(points []delaunay.Point) (delaunay.Result, *delaunay.Mesh, error) {
	n := delaunay.NewNaive(*capacity)
	for _, p := range points {
		err := n.AddPoint(p)
		switch {
		case err == nil:
		case errors.Is(err, delaunay.ErrDuplicatePoint):
			fmt.Println(aurora.Yellow(fmt.Sprintf("skipped: %v", err)))
		default:
			return delaunay.Result{}, nil, err
		}
	}
	return n.Triangulate(), n.Mesh(), nil
}

func loadPoints() ([]delaunay.Point, error) {
	if *svgFile != "" {
		f, err := os.Open(*svgFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return internal.LoadPointsSVG(f)
	}
	return readPoints(os.Stdin)
}

func readPoints(in io.Reader) ([]delaunay.Point, error) {
	var points []delaunay.Point
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		// Blank lines and comments are ignored
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		point, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (delaunay.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return delaunay.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return delaunay.Point{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return delaunay.Point{}, err
	}
	return delaunay.Point{X: x, Y: y}, nil
}
