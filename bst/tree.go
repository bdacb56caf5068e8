package bst

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree with parent links.
// Keys are compared with < only and duplicates are rejected.
//
// Nothing rebalances the tree: inserting ascending keys degenerates it
// into a list. Every operation walks iteratively, so depth is bounded by
// memory rather than by the goroutine stack.
type Tree[T constraints.Ordered] struct {
	root  *Node[T]
	count int
}

type copyFrame[T any] struct {
	src, dst *Node[T]
}

// New instantiates an empty tree
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Root returns the root node or nil if tree is empty
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Empty returns true if tree does not contain any nodes
func (tree *Tree[T]) Empty() bool {
	return tree.root == nil
}

// Count returns number of nodes in the tree.
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Insert key into the tree. If key is already present the existing
// node is returned together with inserted == false.
func (tree *Tree[T]) Insert(key T) (node *Node[T], inserted bool) {
	if tree.root == nil {
		tree.root = NewNode(key)
		tree.count++
		return tree.root, true
	}
	node = tree.root
	for {
		switch {
		case key < node.Key:
			if node.Left == nil {
				node.Left = &Node[T]{Key: key, Parent: node}
				tree.count++
				return node.Left, true
			}
			node = node.Left
		case node.Key < key:
			if node.Right == nil {
				node.Right = &Node[T]{Key: key, Parent: node}
				tree.count++
				return node.Right, true
			}
			node = node.Right
		default:
			return node, false
		}
	}
}

// Find returns the node holding key or nil.
func (tree *Tree[T]) Find(key T) *Node[T] {
	node := tree.root
	for node != nil {
		switch {
		case key < node.Key:
			node = node.Left
		case node.Key < key:
			node = node.Right
		default:
			return node
		}
	}
	return nil
}

// Remove the node holding key. Returns false if there is no such key.
func (tree *Tree[T]) Remove(key T) bool {
	node := tree.Find(key)
	if node == nil {
		return false
	}
	tree.removeNode(node)
	return true
}

// removeNode unlinks node. A node with two children takes over the key of
// its in-order successor, and the successor's own node is unlinked instead.
func (tree *Tree[T]) removeNode(node *Node[T]) {
	if node.Left != nil && node.Right != nil {
		succ := node.Right.minimumNode()
		node.Key = succ.Key
		node = succ
	}
	child := node.Left
	if child == nil {
		child = node.Right
	}
	tree.replaceNode(node, child)
	node.detach()
	tree.count--
}

func (tree *Tree[T]) replaceNode(old *Node[T], new *Node[T]) {
	if old.Parent == nil {
		tree.root = new
	} else {
		if old == old.Parent.Left {
			old.Parent.Left = new
		} else {
			old.Parent.Right = new
		}
	}
	if new != nil {
		new.Parent = old.Parent
	}
}

// Next returns the node with the smallest key strictly greater than key, or nil.
func (tree *Tree[T]) Next(key T) *Node[T] {
	var result *Node[T]
	node := tree.root
	for node != nil {
		if key < node.Key {
			result = node
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return result
}

// Prev returns the node with the largest key strictly less than key, or nil.
func (tree *Tree[T]) Prev(key T) *Node[T] {
	var result *Node[T]
	node := tree.root
	for node != nil {
		if node.Key < key {
			result = node
			node = node.Right
		} else {
			node = node.Left
		}
	}
	return result
}

// Copy returns a deep copy of the tree with the same shape.
func (tree *Tree[T]) Copy() *Tree[T] {
	dup := &Tree[T]{count: tree.count}
	if tree.root == nil {
		return dup
	}
	dup.root = NewNode(tree.root.Key)
	stack := []copyFrame[T]{{src: tree.root, dst: dup.root}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if frame.src.Right != nil {
			frame.dst.Right = &Node[T]{Key: frame.src.Right.Key, Parent: frame.dst}
			stack = append(stack, copyFrame[T]{src: frame.src.Right, dst: frame.dst.Right})
		}
		if frame.src.Left != nil {
			frame.dst.Left = &Node[T]{Key: frame.src.Left.Key, Parent: frame.dst}
			stack = append(stack, copyFrame[T]{src: frame.src.Left, dst: frame.dst.Left})
		}
	}
	return dup
}

// Deallocate releases every node in post-order, unlinking each exactly
// once, and leaves the tree empty. Returns the number of released nodes.
func (tree *Tree[T]) Deallocate() (released int) {
	walk := postOrder[T]{}
	for node := walk.first(tree.root); node != nil; {
		// children are already released, so only the parent link is read
		next := walk.next(node)
		node.detach()
		released++
		node = next
	}
	tree.root = nil
	tree.count = 0
	return released
}

// Swap exchanges the contents of two trees
func (tree *Tree[T]) Swap(other *Tree[T]) {
	tree.root, other.root = other.root, tree.root
	tree.count, other.count = other.count, tree.count
}

// First returns an iterator at the first node of order o, or at end if tree is empty.
func (tree *Tree[T]) First(o Order) *Iter[T] {
	if tree.root == nil {
		return NewIter[T](nil, o)
	}
	return NewIter(walkerOf[T](o).first(tree.root), o)
}

// Last returns an iterator at the last node of order o, or at end if tree is empty.
func (tree *Tree[T]) Last(o Order) *Iter[T] {
	if tree.root == nil {
		return NewIter[T](nil, o)
	}
	return NewIter(walkerOf[T](o).last(tree.root), o)
}

// Items returns all keys in order o
func (tree *Tree[T]) Items(o Order) []T {
	items := make([]T, 0, tree.count)
	for iter := tree.First(o); !iter.Empty(); iter.Next() {
		items = append(items, iter.node.Key)
	}
	return items
}

// String returns a string representation of container
func (tree *Tree[T]) String() string {
	var str strings.Builder
	str.WriteString("BST\n")
	if !tree.Empty() {
		output(tree.root, &str)
	}
	return str.String()
}
