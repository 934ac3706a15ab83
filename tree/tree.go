// Package tree builds generic parse trees out of semantic actions.
package tree

import (
	"fmt"
	"strings"

	"github.com/hansoksendahl/cowbird"
)

// Node is a parse tree node: the name of a non-terminal and the values its
// alternative produced, each either a matched terminal text, a child *Node,
// or whatever else a custom action returned.
type Node struct {
	Name     string
	Children []any
}

// NodeAction returns a semantic action building a Node named name from the
// values of the matched alternative. Attaching it to every alternative of a
// grammar turns parse results into a tree.
func NodeAction(name string) cowbird.Action {
	return func(args []any, binding any) (any, error) {
		return &Node{Name: name, Children: args}, nil
	}
}

// String renders the subtree as an s-expression with matched texts quoted,
// e.g. (sum (num "12") "+" (num "34")).
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Name)
	for _, c := range n.Children {
		b.WriteByte(' ')
		switch child := c.(type) {
		case *Node:
			child.write(b)
		case string:
			fmt.Fprintf(b, "%q", child)
		default:
			fmt.Fprintf(b, "%v", child)
		}
	}
	b.WriteByte(')')
}

// NthChild returns the i-th child of the node, negative i counting from the
// end. Returns nil when the index is out of range.
func NthChild(n *Node, i int) any {
	if n == nil {
		return nil
	}
	if i < 0 {
		i += len(n.Children)
	}
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Terminals collects all matched terminal texts of the subtree in source
// order.
func Terminals(n *Node) []string {
	return appendTerminals(nil, n)
}

func appendTerminals(res []string, n *Node) []string {
	if n == nil {
		return res
	}

	for _, c := range n.Children {
		switch child := c.(type) {
		case *Node:
			res = appendTerminals(res, child)
		case string:
			res = append(res, child)
		}
	}
	return res
}
