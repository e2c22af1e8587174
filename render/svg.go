package render

import (
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/Jerboa-app/BaryTrees/bary"
	"github.com/Jerboa-app/BaryTrees/tritree"
)

const (
	backgroundStyle = "fill:rgb(0,0,0)"
	triangleStyle   = "fill:none;stroke:rgb(0,255,0);stroke-width:1"
	occupiedStyle   = "fill:rgb(77,51,255);fill-opacity:0.5"
	pointStyle      = "fill:rgb(255,255,0)"
	pointRadius     = 3
)

// WriteSVG renders the subtree as an svg document at the given scale (pixels
// per domain unit). Same composition as Draw: occupied triangles filled,
// every triangle stroked, stored points on top.
func WriteSVG(root *tritree.Node, w io.Writer, scale float64) {
	minX, minY, maxX, maxY := treeBounds(root)
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2

	// svg y grows downward, so flip the domain vertically.
	toScreen := func(p bary.Point) (int, int) {
		x := drawPadding + int(math.Round(scale*(p.X-minX)))
		y := height - drawPadding - int(math.Round(scale*(p.Y-minY)))
		return x, y
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, backgroundStyle)

	xs := make([]int, 3)
	ys := make([]int, 3)
	for node := range tritree.IterateNodes(root) {
		if node.Resident == nil {
			continue
		}
		for i, corner := range node.Region.Corners() {
			xs[i], ys[i] = toScreen(corner)
		}
		canvas.Polygon(xs, ys, occupiedStyle)
	}
	for node := range tritree.IterateNodes(root) {
		for i, corner := range node.Region.Corners() {
			xs[i], ys[i] = toScreen(corner)
		}
		canvas.Polygon(xs, ys, triangleStyle)
	}
	for node := range tritree.IterateResidents(root) {
		x, y := toScreen(*node.Resident)
		canvas.Circle(x, y, pointRadius, pointStyle)
	}
	canvas.End()
}
