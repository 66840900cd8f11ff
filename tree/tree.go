// Package tree implements an arena of nodes addressed by integer ids.
//
// Parent and child links are stored as ids rather than pointers, so a deep
// copy of the tree is a copy of its node list. The root always has id 0.
package tree

import (
	"fmt"
	"slices"
)

const noParent = -1

// Cloneable payloads know how to deep copy themselves
type Cloneable[T any] interface {
	Clone() T
}

type Node[T Cloneable[T]] struct {
	Data     T
	id       int
	parentID int
	childIDs []int
}

func (n *Node[T]) ID() int {
	return n.id
}

// ParentID is -1 for the root
func (n *Node[T]) ParentID() int {
	return n.parentID
}

// ChildIDs returns a copy of the child ids in insertion order
func (n *Node[T]) ChildIDs() []int {
	return slices.Clone(n.childIDs)
}

func (n *Node[T]) IsRoot() bool {
	return n.id == 0
}

func (n *Node[T]) IsLeaf() bool {
	return len(n.childIDs) == 0
}

func (n *Node[T]) clone() *Node[T] {
	return &Node[T]{
		Data:     n.Data.Clone(),
		id:       n.id,
		parentID: n.parentID,
		childIDs: slices.Clone(n.childIDs),
	}
}

type Tree[T Cloneable[T]] struct {
	nodes []*Node[T]
}

// New creates a tree holding a single root node
func New[T Cloneable[T]](root T) *Tree[T] {
	return &Tree[T]{
		nodes: []*Node[T]{{Data: root, id: 0, parentID: noParent}},
	}
}

// Get panics if id does not refer to a node of the tree
func (t *Tree[T]) Get(id int) *Node[T] {
	if id < 0 || id >= len(t.nodes) {
		panic(fmt.Sprintf("node id %d out of range [0, %d)", id, len(t.nodes)))
	}
	return t.nodes[id]
}

func (t *Tree[T]) Root() *Node[T] {
	return t.nodes[0]
}

// Len is the number of nodes, root included
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Insert adds a child under parent and returns it. Ids are assigned
// sequentially in insertion order.
func (t *Tree[T]) Insert(data T, parent *Node[T]) *Node[T] {
	node := &Node[T]{
		Data:     data,
		id:       len(t.nodes),
		parentID: parent.id,
	}
	t.nodes = append(t.nodes, node)
	t.nodes[parent.id].childIDs = append(t.nodes[parent.id].childIDs, node.id)
	return node
}

// Update replaces the payload of n
func (t *Tree[T]) Update(n *Node[T], data T) {
	t.Get(n.id).Data = data
}

// Parent returns nil for the root
func (t *Tree[T]) Parent(n *Node[T]) *Node[T] {
	if n == nil || n.parentID == noParent {
		return nil
	}
	return t.Get(n.parentID)
}

// Children returns the children of n in insertion order
func (t *Tree[T]) Children(n *Node[T]) []*Node[T] {
	if n == nil {
		return nil
	}
	children := make([]*Node[T], len(n.childIDs))
	for i, id := range n.childIDs {
		children[i] = t.Get(id)
	}
	return children
}

// Siblings returns the children of n's parent, n included. The root has none.
func (t *Tree[T]) Siblings(n *Node[T]) []*Node[T] {
	return t.Children(t.Parent(n))
}

// Clone deep copies every node; ids and links are kept as they are
func (t *Tree[T]) Clone() *Tree[T] {
	nodes := make([]*Node[T], len(t.nodes))
	for i, n := range t.nodes {
		nodes[i] = n.clone()
	}
	return &Tree[T]{nodes: nodes}
}

// Remove deletes n with its whole subtree and renumbers the remaining nodes
// so that ids stay contiguous and keep their relative order. Removing the
// root is a no-op. Returns the number of removed nodes.
func (t *Tree[T]) Remove(n *Node[T]) int {
	if n == nil || n.IsRoot() {
		return 0
	}
	n = t.Get(n.id)

	removed := make([]bool, len(t.nodes))
	stack := []int{n.id}
	count := 0
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		removed[id] = true
		count++
		stack = append(stack, t.nodes[id].childIDs...)
	}

	parent := t.nodes[n.parentID]
	parent.childIDs = slices.DeleteFunc(parent.childIDs, func(id int) bool {
		return id == n.id
	})

	// Old id -> new id for every surviving node
	remap := make([]int, len(t.nodes))
	kept := make([]*Node[T], 0, len(t.nodes)-count)
	for id, node := range t.nodes {
		if removed[id] {
			remap[id] = noParent
			continue
		}
		remap[id] = len(kept)
		kept = append(kept, node)
	}

	for _, node := range kept {
		node.id = remap[node.id]
		if node.parentID != noParent {
			node.parentID = remap[node.parentID]
		}
		for i, childID := range node.childIDs {
			node.childIDs[i] = remap[childID]
		}
	}

	t.nodes = kept
	return count
}

// Walk visits n and its descendants depth first, children in insertion
// order. Returning false from visit skips the node's subtree.
func (t *Tree[T]) Walk(n *Node[T], visit func(node *Node[T], depth int) bool) {
	var walk func(node *Node[T], depth int)
	walk = func(node *Node[T], depth int) {
		if !visit(node, depth) {
			return
		}
		for _, child := range t.Children(node) {
			walk(child, depth+1)
		}
	}
	walk(n, 0)
}
