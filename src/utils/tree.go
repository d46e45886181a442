package utils

import (
	"fmt"
	"io"
)

const (
	pipe     = "│   "
	tee      = "├── "
	lasttee  = "└── "
	blank    = "    "
	rootMark = "."
)

type TreeNode struct {
	Level    int
	Label    string
	Children []*TreeNode
	Parent   *TreeNode
	Left     *TreeNode
	Right    *TreeNode
}

// AddChild appends a child labelled label and links it to its left sibling.
func (node *TreeNode) AddChild(label string) *TreeNode {
	var pre *TreeNode
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}

	child := &TreeNode{
		Level:  node.Level + 1,
		Label:  label,
		Parent: node,
		Left:   pre,
	}
	if pre != nil {
		pre.Right = child
	}
	node.Children = append(node.Children, child)
	return child
}

// Relink rebuilds the sibling links after Children has been reordered.
func (node *TreeNode) Relink() {
	var pre *TreeNode
	for _, child := range node.Children {
		child.Left = pre
		child.Right = nil
		if pre != nil {
			pre.Right = child
		}
		pre = child
		child.Relink()
	}
}

// ShowTree writes the subtree to w. The prefix carries the indentation of the
// ancestors, and the last child of every node is drawn with the lasttee branch.
func (node *TreeNode) ShowTree(w io.Writer, prefix string) {
	if node.Level == 0 {
		fmt.Fprintln(w, rootMark)
	} else {
		branch := lasttee
		if node.Right != nil {
			branch = tee
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, node.Label)
		if node.Right != nil {
			prefix += pipe
		} else {
			prefix += blank
		}
	}

	for _, child := range node.Children {
		child.ShowTree(w, prefix)
	}
}
