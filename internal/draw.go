package internal

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Padding around the mesh so hull vertices aren't clipped
const drawPadding = 40

// Largest side of a rendered image in pixels, padding excluded. Larger meshes
// are scaled down to fit.
const MaxDrawSize = 4096

type DrawOptions struct {
	// Pixels per mesh unit.
	Scale float64
	// Write vertex IDs next to the vertices.
	Labels bool
}

// Render the mesh with the origin at the bottom left: triangles filled,
// interior edges green, boundary edges cyan, dangling edges red.
func (g *MeshGraph) Render(options DrawOptions) image.Image {
	scale := options.Scale
	if scale <= 0 {
		scale = 50
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range g.vertices {
		minX = math.Min(minX, v.Position.X)
		minY = math.Min(minY, v.Position.Y)
		maxX = math.Max(maxX, v.Position.X)
		maxY = math.Max(maxY, v.Position.Y)
	}
	if len(g.vertices) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	if extent := math.Max(maxX-minX, maxY-minY); scale*extent > MaxDrawSize {
		scale = MaxDrawSize / extent
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	toScreen := func(p Vector2) (float64, float64) {
		return (p.X-minX)*scale + drawPadding, float64(height) - ((p.Y-minY)*scale + drawPadding)
	}

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	for _, id := range g.TriangleIDs() {
		a, b, tc := g.TrianglePositions(id)
		c.MoveTo(toScreen(a))
		c.LineTo(toScreen(b))
		c.LineTo(toScreen(tc))
		c.ClosePath()
	}
	c.SetRGBA(0.3, 0.2, 1, 0.5)
	c.Fill()

	c.SetLineWidth(2)
	for _, id := range g.EdgeIDs() {
		e := g.edges[id]
		switch {
		case e.IsInterior():
			c.SetRGB(0, 1, 0)
		case e.IsBoundary():
			c.SetRGB(0, 1, 1)
		default:
			c.SetRGB(1, 0, 0)
		}
		x1, y1 := toScreen(g.position(e.VertexA))
		x2, y2 := toScreen(g.position(e.VertexB))
		c.DrawLine(x1, y1, x2, y2)
		c.Stroke()
	}

	c.SetFontFace(basicfont.Face7x13)
	for _, id := range g.VertexIDs() {
		x, y := toScreen(g.vertices[id].Position)
		c.SetRGB(1, 1, 1)
		c.DrawCircle(x, y, 3)
		c.Fill()
		if options.Labels {
			c.DrawStringAnchored(fmt.Sprintf("%d", id), x+5, y-5, 0, 0)
		}
	}
	return c.Image()
}

func (g *MeshGraph) DrawPNG(path string, options DrawOptions) error {
	if err := gg.SavePNG(path, g.Render(options)); err != nil {
		return errors.Wrapf(err, "saving mesh image %q", path)
	}
	return nil
}

// Print a PNG inline in the terminal (iTerm only).
func CatPNG(path string, w io.Writer) error {
	if err := imgcat.CatFile(path, w); err != nil {
		return errors.Wrapf(err, "displaying mesh image %q", path)
	}
	return nil
}
