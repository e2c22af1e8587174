package bary

import (
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon bounds how small the signed-area determinant of a basis may get
// before the basis counts as degenerate. It guards construction only;
// containment tests never apply a tolerance.
const Epsilon = 1e-12

// Basis is the barycentric reference frame of a triangle: its three corners,
// in a fixed order that subdivision and containment both depend on.
type Basis struct {
	R1, R2, R3 Point
}

// det is the doubled signed area of the triangle and the denominator of the
// barycentric solve. Zero means the corners are collinear.
func (b Basis) det() float64 {
	return (b.R1.X-b.R3.X)*(b.R2.Y-b.R3.Y) - (b.R2.X-b.R3.X)*(b.R1.Y-b.R3.Y)
}

// Degenerate reports whether the corners are numerically collinear.
// Barycentric coordinates against a degenerate basis are undefined.
func (b Basis) Degenerate() bool {
	return math.Abs(b.det()) < Epsilon
}

// ToBarycentric expresses p as the affine combination l1*R1 + l2*R2 + l3*R3
// with l1+l2+l3 = 1. Only l1 and l2 come from the 2x2 solve; l3 is completed
// as 1-l1-l2. For a degenerate basis the results are NaN or Inf.
func (b Basis) ToBarycentric(p Point) (l1, l2, l3 float64) {
	d := b.det()
	l1 = ((p.X-b.R3.X)*(b.R2.Y-b.R3.Y) - (b.R2.X-b.R3.X)*(p.Y-b.R3.Y)) / d
	l2 = ((b.R1.X-b.R3.X)*(p.Y-b.R3.Y) - (p.X-b.R3.X)*(b.R1.Y-b.R3.Y)) / d
	l3 = 1 - l1 - l2
	return l1, l2, l3
}

// ToCartesian is the inverse combination: the cartesian point at the given
// barycentric coordinates.
func (b Basis) ToCartesian(l1, l2, l3 float64) Point {
	v := r2.Point(b.R1).Mul(l1).Add(r2.Point(b.R2).Mul(l2)).Add(r2.Point(b.R3).Mul(l3))
	return Point(v)
}

// EdgeMidpoints returns the midpoints of the triangle's edges: m1 on R1-R3,
// m2 on R2-R3, m3 on R1-R2, evaluated through the frame at (1/2, 0, 1/2),
// (0, 1/2, 1/2) and (1/2, 1/2, 0).
func (b Basis) EdgeMidpoints() (m1, m2, m3 Point) {
	m1 = b.ToCartesian(0.5, 0, 0.5)
	m2 = b.ToCartesian(0, 0.5, 0.5)
	m3 = b.ToCartesian(0.5, 0.5, 0)
	return m1, m2, m3
}
