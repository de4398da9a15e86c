package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/pathfill/pathfill"
)

// Demo of path filling. Input on stdin should be newline separated points in
// the form "x y", with each loop separated by an extra newline.
//
// Loops may be non-convex and may self-intersect. A loop contained inside
// another loop is a hole.
func main() {
	pngPath := flag.String("png", "", "render the mesh to this PNG file")
	cat := flag.Bool("cat", false, "print the rendered mesh to the terminal (iTerm only, implies -png)")
	scale := flag.Float64("scale", 10, "pixels per input unit when rendering")
	flag.Parse()

	loops := readLoops(os.Stdin)
	fmt.Printf("Read %d loops\n", len(loops))

	mesh, err := pathfill.Fill(loops...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fill failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d vertices, %d triangles\n", len(mesh.Vertices), mesh.TriangleCount())

	if *cat && *pngPath == "" {
		*pngPath = "/tmp/pathfill_mesh.png"
	}
	if *pngPath != "" {
		drawMesh(mesh, *pngPath, *scale)
		fmt.Printf("Wrote %s\n", *pngPath)
		if *cat {
			imgcat.CatFile(*pngPath, os.Stdout)
		}
	}
}

func readLoops(in *os.File) [][]pathfill.Point {
	loops := [][]pathfill.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []pathfill.Point{}
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the loop
		if line == "" {
			if len(points) > 0 {
				loops = append(loops, points)
				points = []pathfill.Point{}
			}
			continue
		}

		// Parse the point out of the line
		points = append(points, parsePoint(line))
	}

	// Handle trailing loop if any
	if len(points) > 0 {
		loops = append(loops, points)
	}
	return loops
}

func parsePoint(line string) pathfill.Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return pathfill.Point{X: x, Y: y}
}

const drawPadding = 20

func drawMesh(mesh *pathfill.VertexBuffers, path string, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range mesh.Vertices {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if minX > maxX {
		minX, minY, maxX, maxY = 0, 0, 1, 1
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

	c.SetLineWidth(2)
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Vertices[mesh.Indices[i]]
		b := mesh.Vertices[mesh.Indices[i+1]]
		d := mesh.Vertices[mesh.Indices[i+2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SavePNG(path)
}
