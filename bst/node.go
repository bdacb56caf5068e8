package bst

import (
	"fmt"
	"strings"
)

// Node is a single element within the tree.
//
// Parent is a back-reference only: the tree owns a node through its
// parent's Left or Right slot. For every node n, n.Left.Parent == n and
// n.Right.Parent == n must hold, otherwise traversal silently breaks.
type Node[T any] struct {
	Key    T
	Parent *Node[T]
	Left   *Node[T]
	Right  *Node[T]
}

// NewNode returns a detached node holding key.
func NewNode[T any](key T) *Node[T] {
	return &Node[T]{Key: key}
}

// Detached reports whether the node has no links to any other node.
func (node *Node[T]) Detached() bool {
	return node.Parent == nil && node.Left == nil && node.Right == nil
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("%v", node.Key)
}

func (node *Node[T]) isLeaf() bool {
	return node.Left == nil && node.Right == nil
}

func (node *Node[T]) isLeftChild() bool {
	return node.Parent != nil && node == node.Parent.Left
}

func (node *Node[T]) isRightChild() bool {
	return node.Parent != nil && node == node.Parent.Right
}

func (node *Node[T]) minimumNode() *Node[T] {
	if node == nil {
		return nil
	}
	for node.Left != nil {
		node = node.Left
	}
	return node
}

func (node *Node[T]) maximumNode() *Node[T] {
	if node == nil {
		return nil
	}
	for node.Right != nil {
		node = node.Right
	}
	return node
}

// deepestLeftFirst descends to a leaf, taking the left child whenever there is one.
func (node *Node[T]) deepestLeftFirst() *Node[T] {
	if node == nil {
		return nil
	}
	for !node.isLeaf() {
		if node.Left != nil {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node
}

// deepestRightFirst descends to a leaf, taking the right child whenever there is one.
func (node *Node[T]) deepestRightFirst() *Node[T] {
	if node == nil {
		return nil
	}
	for !node.isLeaf() {
		if node.Right != nil {
			node = node.Right
		} else {
			node = node.Left
		}
	}
	return node
}

func (node *Node[T]) detach() {
	node.Parent, node.Left, node.Right = nil, nil, nil
}

type outputFrame[T any] struct {
	node    *Node[T]
	prefix  string
	isTail  bool
	visited bool
}

// output writes the subtree under node into str, right subtree on top.
// The walk keeps its own stack so a degenerate chain prints in full.
func output[T any](node *Node[T], str *strings.Builder) {
	stack := []outputFrame[T]{{node: node, isTail: true}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.visited {
			str.WriteString(frame.prefix)
			if frame.isTail {
				str.WriteString("└── ")
			} else {
				str.WriteString("┌── ")
			}
			str.WriteString(frame.node.String())
			str.WriteByte('\n')
			continue
		}

		// stack is LIFO: push left, node, right to print right, node, left
		if frame.node.Left != nil {
			newPrefix := frame.prefix
			if frame.isTail {
				newPrefix += "    "
			} else {
				newPrefix += "│   "
			}
			stack = append(stack, outputFrame[T]{node: frame.node.Left, prefix: newPrefix, isTail: true})
		}
		frame.visited = true
		stack = append(stack, frame)
		if frame.node.Right != nil {
			newPrefix := frame.prefix
			if frame.isTail {
				newPrefix += "│   "
			} else {
				newPrefix += "    "
			}
			stack = append(stack, outputFrame[T]{node: frame.node.Right, prefix: newPrefix, isTail: false})
		}
	}
}
