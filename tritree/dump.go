package tritree

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/Jerboa-app/BaryTrees/dbg"
)

func (n *Node) String() string {
	corners := n.Region.Corners()
	resident := dbg.Name(nil)
	if n.Resident != nil {
		resident = n.Resident.String()
	}
	return fmt.Sprintf("Node %s depth %d <%s, %s, %s> holds %s",
		n.DbgName(), n.Depth, corners[0], corners[1], corners[2], resident)
}

func (n *Node) DbgName() string {
	name := dbg.Name(n)
	if n.IsRoot { // The one node built by the constructor
		name = aurora.Cyan(name).String()
	} else if n.Resident != nil { // Holds a point
		name = aurora.Green(name).String()
	} else if n.Divided() { // Pure routing node
		name = aurora.Yellow(name).String()
	}
	return name
}

// DumpTree renders the subtree as an indented listing, one node per line, in
// traversal order.
func DumpTree(root *Node) string {
	var b strings.Builder
	var walk func(n *Node, indent int)
	walk = func(n *Node, indent int) {
		b.WriteString(strings.Repeat("  ", indent))
		b.WriteString(n.String())
		b.WriteString("\n")
		if n.Divided() {
			for _, child := range n.Children() {
				walk(child, indent+1)
			}
		}
	}
	walk(root, 0)
	return b.String()
}
