package cmd

import (
	"fmt"
	"io"
	stdsort "sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sortdemo/src/sort"
	"sortdemo/src/utils"
)

// printVector writes each element followed by a space, then a line break.
func printVector(w io.Writer, data []int) {
	for _, n := range data {
		fmt.Fprintf(w, "%d ", n)
	}
	fmt.Fprintln(w)
}

func parseInts(args []string) ([]int, error) {
	data := make([]int, 0, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		data = append(data, n)
	}
	return data, nil
}

type namedAlgorithm struct {
	name  string
	title string
	algo  sort.Algorithm
}

// selectAlgorithms resolves names in the given order, or all registered
// algorithms when names is empty.
func selectAlgorithms(names []string, earlyExit bool) ([]namedAlgorithm, error) {
	if len(names) == 0 {
		names = sort.Names()
	}
	selected := make([]namedAlgorithm, 0, len(names))
	for _, name := range names {
		algo, err := sort.Lookup(name)
		if err != nil {
			return nil, err
		}
		title, _ := sort.Title(name)
		if _, ok := algo.(sort.Bubble); ok && earlyExit {
			algo = sort.Bubble{EarlyExit: true}
			title += " (early exit)"
		}
		selected = append(selected, namedAlgorithm{name: strings.ToLower(strings.TrimSpace(name)), title: title, algo: algo})
	}
	return selected, nil
}

// partitionTree collects quicksort partition steps into a tree. Steps arrive
// in preorder, so the parent of a step at depth d is the last step seen at
// depth d-1.
type partitionTree struct {
	root *utils.TreeNode
	path []*utils.TreeNode
	lo   map[*utils.TreeNode]int
}

func newPartitionTree() *partitionTree {
	root := &utils.TreeNode{}
	return &partitionTree{
		root: root,
		path: []*utils.TreeNode{root},
		lo:   make(map[*utils.TreeNode]int),
	}
}

func (t *partitionTree) add(p sort.Partition) {
	t.path = t.path[:p.Depth+1]
	node := t.path[p.Depth].AddChild(fmt.Sprintf("[%d..%d] pivot=%d", p.Lo, p.Hi, p.Pivot))
	t.lo[node] = p.Lo
	t.path = append(t.path, node)
}

func (t *partitionTree) show(w io.Writer) {
	t.order(t.root)
	t.root.Relink()
	t.root.ShowTree(w, "")
}

func (t *partitionTree) order(node *utils.TreeNode) {
	stdsort.Slice(node.Children, func(i, j int) bool {
		return t.lo[node.Children[i]] < t.lo[node.Children[j]]
	})
	for _, child := range node.Children {
		t.order(child)
	}
}
