package problem

import (
	"fmt"
	"io"
	"strings"
)

// Tree records the search tree as parent→children edges. Nodes themselves
// never point to their children; the recorder owns that relation.
type Tree struct {
	root     *Node
	children map[*Node][]*Node
	size     int
}

// NewTree returns an empty recorder.
func NewTree() *Tree {
	return &Tree{children: make(map[*Node][]*Node)}
}

// Reset drops every edge and installs root.
func (t *Tree) Reset(root *Node) {
	t.root = root
	t.children = make(map[*Node][]*Node)
	t.size = 0
	if root != nil {
		t.size = 1
	}
}

// Record appends child under its parent.
func (t *Tree) Record(child *Node) {
	if child == nil || child.Parent == nil {
		return
	}
	t.children[child.Parent] = append(t.children[child.Parent], child)
	t.size++
}

// Root returns the root node, if any.
func (t *Tree) Root() *Node { return t.root }

// Children returns the recorded children of n in generation order.
func (t *Tree) Children(n *Node) []*Node { return t.children[n] }

// Len returns the number of recorded nodes, root included.
func (t *Tree) Len() int { return t.size }

// Print writes the tree depth-first, one node per line, indented by depth:
//
//	(0,0)
//	  DOWN (0,1)
//	  RIGHT (1,0)
func (t *Tree) Print(w io.Writer) error {
	if t.root == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, t.root.Coord); err != nil {
		return err
	}

	return t.print(w, t.root, 1)
}

func (t *Tree) print(w io.Writer, n *Node, level int) error {
	pad := strings.Repeat("  ", level)
	for _, c := range t.children[n] {
		if _, err := fmt.Fprintf(w, "%s%s %s\n", pad, c.Action, c.Coord); err != nil {
			return err
		}
		if err := t.print(w, c, level+1); err != nil {
			return err
		}
	}

	return nil
}
