package tritree

// A node iterator lets you loop over the nodes of a subtree exactly once, in
// traversal order (a node before its children, children in fixed order).
// Unlike a general graph, the tree is strictly owned with no sharing between
// subtrees, so a plain stack suffices and no seen set is kept. Behavior is
// undefined if you modify the tree during iteration.
type NodeIterator struct {
	stack []*Node
}

func IterateNodes(root *Node) chan *Node {
	iter := NewNodeIterator(root)
	return iter.MakeChan()
}

// IterateResidents yields only the nodes that hold a stored point.
func IterateResidents(root *Node) chan *Node {
	ch := make(chan *Node)
	go func() {
		for node := range IterateNodes(root) {
			if node.Resident != nil {
				ch <- node
			}
		}
		close(ch)
	}()
	return ch
}

func NewNodeIterator(root *Node) *NodeIterator {
	return &NodeIterator{[]*Node{root}}
}

// Create a channel using a goroutine to iterate over the subtree. This
// provides a nicer API for looping, and allows the tree walking to happen in
// another thread when possible.
func (iter *NodeIterator) MakeChan() chan *Node {
	ch := make(chan *Node)
	go func() {
		for {
			node := iter.Next()
			if node == nil {
				break
			}
			ch <- node
		}
		close(ch)
	}()
	return ch
}

func (iter *NodeIterator) Next() *Node {
	if len(iter.stack) == 0 {
		return nil
	}
	node := iter.stack[len(iter.stack)-1]
	iter.stack = iter.stack[:len(iter.stack)-1]

	if node.Divided() {
		// Push in reverse so they pop in traversal order.
		children := node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			iter.stack = append(iter.stack, children[i])
		}
	}

	return node
}
