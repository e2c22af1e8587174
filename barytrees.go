// A spatial index over 2D points built on recursive triangular subdivision.
//
// A tree covers the triangle spanned by three corner points. Insertion
// subdivides triangles through their edge midpoints as points accumulate,
// and membership at every level is decided in barycentric coordinates
// against the local triangle, so lookups never touch cartesian geometry
// beyond the initial conversion.
package barytrees

import (
	"github.com/Jerboa-app/BaryTrees/bary"
	"github.com/Jerboa-app/BaryTrees/tritree"
)

type Point = bary.Point
type Basis = bary.Basis
type Region = tritree.Region
type Node = tritree.Node

// New builds the root of an index over the triangle r1, r2, r3. The corner
// order matters: it fixes the barycentric frame, and with it which edges of
// the domain are inside (those adjacent to r3) and which are not (r1-r2).
//
// The corners must not be collinear.
func New(r1, r2, r3 Point) (root *Node, err error) {
	defer func() {
		recoveredErr := tritree.HandleTreePanicRecover(recover())
		if recoveredErr != nil {
			root = nil
			err = recoveredErr
		}
	}()
	return tritree.NewTree(r1, r2, r3), nil
}
