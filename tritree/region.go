// Package tritree implements the triangular subdivision tree: regions
// described by barycentric bases, and nodes that recursively subdivide a
// root triangle to store points.
package tritree

import "github.com/Jerboa-app/BaryTrees/bary"

// Region is the set of plane points covered by one triangle of the
// subdivision, described by its barycentric basis. The basis order is
// load-bearing: Contains and Subdivide both read corners by position.
type Region struct {
	Basis bary.Basis
}

// Contains converts p to barycentric coordinates against the region's basis
// and applies the half-open convention
//
//	l1 >= 0 && l2 >= 0 && l1+l2 < 1
//
// so the edges adjacent to R3 are inside while the R1-R2 edge, R1 and R2
// themselves included, is outside. The comparisons are exact, with no
// tolerance. A degenerate basis yields NaN coordinates, which fail the
// comparisons; such a region contains nothing.
func (r Region) Contains(p bary.Point) bool {
	l1, l2, _ := r.Basis.ToBarycentric(p)
	return l1 >= 0 && l2 >= 0 && l1+l2 < 1
}

// Corners returns the basis corners in basis order.
func (r Region) Corners() [3]bary.Point {
	return [3]bary.Point{r.Basis.R1, r.Basis.R2, r.Basis.R3}
}

// Intersects reports whether any corner of r lies inside other. This is a
// corner test in one direction only, not polygon intersection: when other
// sits strictly inside r without covering any of r's corners, the overlap
// goes undetected. Query pruning is defined in terms of exactly this test.
func (r Region) Intersects(other Region) bool {
	for _, c := range r.Corners() {
		if other.Contains(c) {
			return true
		}
	}
	return false
}

// Subdivide splits the region into the four medial triangles. With m1, m2,
// m3 the edge midpoints from the basis, the children and their corner order
// are
//
//	top    (R1, m3, m1)
//	center (m3, m2, m1)
//	left   (m3, R2, m2)
//	right  (m1, m2, R3)
//
// Under the Contains convention the children tile the parent region, with
// one wrinkle: the shared m3-m1 edge satisfies Contains for both top and
// center, so a point exactly on it belongs to whichever of the two is asked
// first. Child bases are built as-is; near the float resolution limit the
// midpoints can collapse onto a corner, and the resulting degenerate child
// simply contains nothing.
func (r Region) Subdivide() (top, center, left, right Region) {
	m1, m2, m3 := r.Basis.EdgeMidpoints()
	top = Region{Basis: bary.Basis{R1: r.Basis.R1, R2: m3, R3: m1}}
	center = Region{Basis: bary.Basis{R1: m3, R2: m2, R3: m1}}
	left = Region{Basis: bary.Basis{R1: m3, R2: r.Basis.R2, R3: m2}}
	right = Region{Basis: bary.Basis{R1: m1, R2: m2, R3: r.Basis.R3}}
	return top, center, left, right
}
