package tritree

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/Jerboa-app/BaryTrees/bary"
)

// This file parses the svg fixtures into basis corners. It is not a full (or
// even correct) svg handler: it finds the single polygon element, requires
// exactly three points, and returns them in document order as r1, r2, r3. If
// anything goes wrong, it bails out.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.
// Note that svg y grows downward; the tree does not care.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (r1, r2, r3 bary.Point) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var corners []bary.Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		corners = append(corners, bary.Point{X: x, Y: y})
	}
	if len(corners) != 3 {
		log.Fatalf("Fixture %q must hold a triangle, got %d corners", name, len(corners))
	}
	return corners[0], corners[1], corners[2]
}

// A fixture defined in code: the upright equilateral triangle of the given
// side length, base on the x axis, apex as r1.
func EquilateralDomain(side float64) (r1, r2, r3 bary.Point) {
	r1 = bary.Point{X: 0, Y: side * math.Sqrt(3) / 2}
	r2 = bary.Point{X: -side / 2, Y: 0}
	r3 = bary.Point{X: side / 2, Y: 0}
	return r1, r2, r3
}
