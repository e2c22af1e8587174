package tritree

import "github.com/Jerboa-app/BaryTrees/bary"

// MaxDepth caps how deep insertion may subdivide. Every level halves the
// region diameter, so well before this depth float64 midpoints stop
// separating from the corners; refusing to split past the cap keeps inserts
// of coincident points finite.
const MaxDepth = 64

// Node is one triangle of the subdivision tree. A node can hold a resident
// point and four children at the same time: a point placed at a node stays
// there even when later insertions force the node to split around it.
// Children are created four at a time and never removed.
type Node struct {
	Region Region

	// Resident is the point stored at this node, nil if none. It is set at
	// most once and never moves into a child.
	Resident *bary.Point

	// The children in fixed traversal order. Either all four are set or none
	// is; see Divided.
	Top, Center, Left, Right *Node

	// IsRoot marks the node built by NewTree.
	IsRoot bool

	// Depth is 0 at the root and parent+1 below.
	Depth int
}

// NewTree builds the root node over the triangle r1, r2, r3. It panics with
// a TreeError when the corners are collinear; the barytrees package wraps
// this into an ordinary error return.
func NewTree(r1, r2, r3 bary.Point) *Node {
	basis := bary.Basis{R1: r1, R2: r2, R3: r3}
	if basis.Degenerate() {
		fatalf("cannot build a tree over collinear corners %s, %s, %s", r1, r2, r3)
	}
	return &Node{Region: Region{Basis: basis}, IsRoot: true}
}

// Divided reports whether the node has been split. Children are
// all-or-nothing, so checking one checks all four.
func (n *Node) Divided() bool {
	return n.Top != nil
}

// Children returns the four children in fixed traversal order: top, center,
// left, right. All entries are nil for an unsplit node.
func (n *Node) Children() [4]*Node {
	return [4]*Node{n.Top, n.Center, n.Left, n.Right}
}

// split creates the four children. The resident point, if any, stays where
// it is.
func (n *Node) split() {
	top, center, left, right := n.Region.Subdivide()
	depth := n.Depth + 1
	n.Top = &Node{Region: top, Depth: depth}
	n.Center = &Node{Region: center, Depth: depth}
	n.Left = &Node{Region: left, Depth: depth}
	n.Right = &Node{Region: right, Depth: depth}
}

// Insert places p in the subtree and reports whether it was stored. False
// means the point is not represented anywhere: it lies outside the node's
// region, or every child refused it after a split (possible only for points
// exactly on subdivision edges), or the depth cap was reached.
//
// A node that holds no point and has no children takes the direct placement
// path: it splits once and parks p on the first child whose region accepts
// it, without recursing. The node's own Resident stays empty on that path,
// which is why the root never stores a point itself. In every other case p
// is handed to the children in fixed order, splitting first when needed.
func (n *Node) Insert(p bary.Point) bool {
	if !n.Region.Contains(p) {
		return false
	}

	if n.Resident == nil && !n.Divided() {
		if n.Depth >= MaxDepth {
			return false
		}
		n.split()
		for _, child := range n.Children() {
			if child.Region.Contains(p) {
				child.Resident = &p
				return true
			}
		}
		// No child claimed p. The fresh children stay; nodes are never
		// removed once created.
		return false
	}

	if !n.Divided() {
		if n.Depth >= MaxDepth {
			return false
		}
		n.split()
	}
	for _, child := range n.Children() {
		if child.Insert(p) {
			return true
		}
	}
	return false
}

// Query collects every stored point of the subtree that lies in q. A
// subtree is pruned when none of its region's corners lies inside q, so a
// query too small to cover any corner of the nodes it overlaps can come
// back short. Full-root queries report every stored point when the domain
// corners are dyadic, which keeps the corner solves exact at every depth.
// On other domains the nodes stacked against an excluded domain corner
// have two corners outside by convention, and rounding can push the third
// out as well, dropping that chain's residents from the result.
// Results come back in traversal order, a node's resident before its
// children.
func (n *Node) Query(q Region) []bary.Point {
	if !n.Region.Intersects(q) {
		return nil
	}
	var points []bary.Point
	if n.Resident != nil && q.Contains(*n.Resident) {
		points = append(points, *n.Resident)
	}
	if !n.Divided() {
		return points
	}
	for _, child := range n.Children() {
		points = append(points, child.Query(q)...)
	}
	return points
}

// Size counts the nodes of the subtree, this one included. Stored points do
// not contribute; a node holding nothing still counts as one.
func (n *Node) Size() int {
	size := 1
	if n.Divided() {
		for _, child := range n.Children() {
			size += child.Size()
		}
	}
	return size
}
