// Package bary implements the barycentric view of the plane that the tree
// indexes through: cartesian points, and triangular bases that convert
// between cartesian and barycentric coordinates.
package bary

import (
	"strconv"

	"github.com/golang/geo/r2"
)

// Point is a 2D cartesian point. It is a plain value type; points are copied
// freely and compared by coordinates, never by identity.
type Point r2.Point

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " +
		strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
