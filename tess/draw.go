package tess

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/pathfill/pathfill/dbg"
)

// This is for debugging purposes only

// Padding around the mesh so stray triangles stand out
const dbgDrawPadding = 100

// Helper to draw and print a triangulated mesh in the terminal (iTerm only)
// for debugging.
func (vb *VertexBuffers) dbgDraw(scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range vb.Vertices {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i := 0; i+2 < len(vb.Indices); i += 3 {
		a := vb.Vertices[vb.Indices[i]]
		b := vb.Vertices[vb.Indices[i+1]]
		cc := vb.Vertices[vb.Indices[i+2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SavePNG("/tmp/pathfill_mesh.png")
	imgcat.CatFile("/tmp/pathfill_mesh.png", os.Stdout)
}

func (e *spanEdge) dbgString() string {
	upper := dbg.Name(e.upper.id)
	if e.merge {
		// A merge edge points at nothing below the sweep line
		return fmt.Sprintf("%s~%s", upper, aurora.Red("merge").String())
	}
	return fmt.Sprintf("%s~%s", upper, dbg.Name(e.lower.id))
}

func (s *span) dbgString() string {
	return fmt.Sprintf("| %s   %s |", s.left.dbgString(), s.right.dbgString())
}

// dbgString renders the sweep line left to right, one cell per span. Span
// names are stable across the span's lifetime, so two dumps bracketing an
// event show exactly which spans moved.
func (sl *sweepLine) dbgString() string {
	var parts []string
	for i := 0; i < sl.len(); i++ {
		name := aurora.Green(dbg.Name(sl.order[i])).String()
		parts = append(parts, fmt.Sprintf("%s %s", name, sl.at(i).dbgString()))
	}
	if len(parts) == 0 {
		return "|  sl: empty"
	}
	return "|  sl: " + strings.Join(parts, "  ")
}
