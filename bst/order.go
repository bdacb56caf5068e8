package bst

import (
	"fmt"
)

// Order selects one of the three depth-first traversals.
type Order int

const (
	// InOrder is left, node, right: ascending keys
	InOrder Order = iota
	// PreOrder is node, left, right
	PreOrder
	// PostOrder is left, right, node
	PostOrder
)

// Orders lists every supported traversal order.
var Orders = []Order{InOrder, PreOrder, PostOrder}

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Valid reports whether o is one of the supported orders.
func (o Order) Valid() bool {
	return o == InOrder || o == PreOrder || o == PostOrder
}

// walker steps through a tree in one fixed order using only the
// Parent, Left and Right links. A nil result is the end sentinel.
type walker[T any] interface {
	first(root *Node[T]) *Node[T]
	last(root *Node[T]) *Node[T]
	next(node *Node[T]) *Node[T]
	prev(node *Node[T]) *Node[T]
}

func walkerOf[T any](o Order) walker[T] {
	switch o {
	case InOrder:
		return inOrder[T]{}
	case PreOrder:
		return preOrder[T]{}
	case PostOrder:
		return postOrder[T]{}
	}
	panic("bst: unknown order " + o.String())
}

type inOrder[T any] struct{}

func (w inOrder[T]) first(root *Node[T]) *Node[T] {
	return root.minimumNode()
}

func (w inOrder[T]) last(root *Node[T]) *Node[T] {
	return root.maximumNode()
}

func (w inOrder[T]) next(node *Node[T]) *Node[T] {
	if node.Right != nil {
		return node.Right.minimumNode()
	}
	var parent *Node[T]
	for parent = node.Parent; parent != nil && node == parent.Right; parent = node.Parent {
		node = parent
	}
	return parent
}

func (w inOrder[T]) prev(node *Node[T]) *Node[T] {
	if node.Left != nil {
		return node.Left.maximumNode()
	}
	var parent *Node[T]
	for parent = node.Parent; parent != nil && node == parent.Left; parent = node.Parent {
		node = parent
	}
	return parent
}

type preOrder[T any] struct{}

func (w preOrder[T]) first(root *Node[T]) *Node[T] {
	return root
}

func (w preOrder[T]) last(root *Node[T]) *Node[T] {
	return root.deepestRightFirst()
}

func (w preOrder[T]) next(node *Node[T]) *Node[T] {
	if node.Left != nil {
		return node.Left
	}
	if node.Right != nil {
		return node.Right
	}
	// climb until we leave a left subtree whose parent still has a right one
	for node.Parent != nil && (node.isRightChild() || node.Parent.Right == nil) {
		node = node.Parent
	}
	if node.Parent == nil {
		return nil
	}
	return node.Parent.Right
}

func (w preOrder[T]) prev(node *Node[T]) *Node[T] {
	parent := node.Parent
	if parent == nil {
		return nil
	}
	if node == parent.Right && parent.Left != nil {
		return parent.Left.deepestRightFirst()
	}
	return parent
}

type postOrder[T any] struct{}

func (w postOrder[T]) first(root *Node[T]) *Node[T] {
	return root.deepestLeftFirst()
}

func (w postOrder[T]) last(root *Node[T]) *Node[T] {
	return root
}

func (w postOrder[T]) next(node *Node[T]) *Node[T] {
	parent := node.Parent
	if parent == nil {
		return nil
	}
	if node == parent.Left && parent.Right != nil {
		return parent.Right.deepestLeftFirst()
	}
	return parent
}

func (w postOrder[T]) prev(node *Node[T]) *Node[T] {
	if node.Right != nil {
		return node.Right
	}
	if node.Left != nil {
		return node.Left
	}
	for node.Parent != nil && (node.isLeftChild() || node.Parent.Left == nil) {
		node = node.Parent
	}
	if node.Parent == nil {
		return nil
	}
	return node.Parent.Left
}
