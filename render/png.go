// Package render draws a subdivision tree, rasterized through gg or as an
// svg document. Everything here is for demos and debugging; the index itself
// never imports it.
package render

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/Jerboa-app/BaryTrees/dbg"
	"github.com/Jerboa-app/BaryTrees/tritree"
)

// Padding around the root triangle, in canvas pixels.
const drawPadding = 40

// Draw renders the subtree onto a fresh context at the given scale (canvas
// pixels per domain unit). Triangles holding a point are filled, every
// triangle is stroked, and the stored points go on top.
func Draw(root *tritree.Node, scale float64) *gg.Context {
	return draw(root, scale, false)
}

func draw(root *tritree.Node, scale float64, labels bool) *gg.Context {
	minX, minY, maxX, maxY := treeBounds(root)

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for node := range tritree.IterateNodes(root) {
		drawNode(c, node, false, labels)
	}
	for node := range tritree.IterateNodes(root) {
		drawNode(c, node, true, false)
	}
	c.SetRGB(1, 1, 0)
	for node := range tritree.IterateResidents(root) {
		// DrawPoint radius is in device pixels, so dots keep their size at
		// any scale.
		c.DrawPoint(node.Resident.X, node.Resident.Y, 2.5)
		c.Fill()
	}
	return c
}

func drawNode(c *gg.Context, node *tritree.Node, stroke bool, labels bool) {
	if !stroke && node.Resident == nil {
		return
	}
	corners := node.Region.Corners()
	c.MoveTo(corners[0].X, corners[0].Y)
	c.LineTo(corners[1].X, corners[1].Y)
	c.LineTo(corners[2].X, corners[2].Y)
	c.ClosePath()
	if stroke {
		c.SetRGB(0, 1, 0)
		c.Stroke()
	} else {
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.Fill()
		if labels {
			c.SetRGB(1, 1, 1)
			cx := (corners[0].X + corners[1].X + corners[2].X) / 3
			cy := (corners[0].Y + corners[1].Y + corners[2].Y) / 3
			// The context is flipped, which would mirror text, so hop back
			// to device coordinates for the label.
			cx, cy = c.TransformPoint(cx, cy)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(node), cx, cy, 0.5, 0.5)
			c.Pop()
		}
	}
}

// WritePNG draws the subtree and saves it to path.
func WritePNG(root *tritree.Node, path string, scale float64) error {
	return Draw(root, scale).SavePNG(path)
}

// Terminal draws the subtree with node name labels and prints it inline
// (iTerm only).
func Terminal(root *tritree.Node, scale float64) error {
	c := draw(root, scale, true)
	if err := c.SavePNG("/tmp/barytree.png"); err != nil {
		return err
	}
	imgcat.CatFile("/tmp/barytree.png", os.Stdout)
	return nil
}

// Everything in the subtree, stored points included, lies inside the root
// triangle, so its corners bound the scene.
func treeBounds(root *tritree.Node) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, corner := range root.Region.Corners() {
		minX = math.Min(minX, corner.X)
		minY = math.Min(minY, corner.Y)
		maxX = math.Max(maxX, corner.X)
		maxY = math.Max(maxY, corner.Y)
	}
	return minX, minY, maxX, maxY
}
