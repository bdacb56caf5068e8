package bst

import (
	"github.com/pkg/errors"

	"github.com/neganovalexey/bstset/codeerrors"
)

// ErrDerefEnd is returned when an iterator positioned at the end sentinel is dereferenced
var ErrDerefEnd = codeerrors.ErrInvalidArgument.WithReason(errors.New("Dereferencing null pointer."))

// Iter is a cursor over a tree in one fixed order.
// A nil node is the end sentinel of both forward and reverse iteration.
//
// Iterators are invalidated by removal of the referenced node or of its
// ancestors; nothing tracks this.
type Iter[T any] struct {
	node  *Node[T]
	order Order
}

// NewIter returns an iterator at node (nil means end) walking in order o.
func NewIter[T any](node *Node[T], o Order) *Iter[T] {
	if !o.Valid() {
		panic("bst: unknown order " + o.String())
	}
	return &Iter[T]{node: node, order: o}
}

// Empty checks is nothing to iterate
func (i *Iter[T]) Empty() bool {
	return i.node == nil
}

// Next iterates to next element
func (i *Iter[T]) Next() bool {
	if i.node == nil {
		return false
	}
	i.node = walkerOf[T](i.order).next(i.node)
	return i.node != nil
}

// Prev iterates to previous element
func (i *Iter[T]) Prev() bool {
	if i.node == nil {
		return false
	}
	i.node = walkerOf[T](i.order).prev(i.node)
	return i.node != nil
}

// HasNext checks has next element
func (i *Iter[T]) HasNext() bool {
	return i.node != nil && walkerOf[T](i.order).next(i.node) != nil
}

// Item returns the key at the current position.
func (i *Iter[T]) Item() (item T, err error) {
	if i.node == nil {
		return item, ErrDerefEnd
	}
	return i.node.Key, nil
}

// Equal reports whether both iterators walk the same order and stand on the same node.
func (i *Iter[T]) Equal(other *Iter[T]) bool {
	return i.order == other.order && i.node == other.node
}

// Order returns the traversal order of the iterator
func (i *Iter[T]) Order() Order {
	return i.order
}

// WithOrder returns a new iterator at the same node walking in order o.
func (i *Iter[T]) WithOrder(o Order) *Iter[T] {
	return NewIter(i.node, o)
}

// Clone returns an independent copy of the iterator
func (i *Iter[T]) Clone() *Iter[T] {
	return &Iter[T]{node: i.node, order: i.order}
}

// Reverse returns a reverse iterator at the same node
func (i *Iter[T]) Reverse() *ReverseIter[T] {
	return &ReverseIter[T]{current: *i}
}

// ForEach applies f for each next item, starting at the current position
func (i *Iter[T]) ForEach(f ForEachFunc[T]) {
	for ; !i.Empty(); i.Next() {
		if !f(i.node.Key) {
			break
		}
	}
}

// ReverseIter walks an order backwards: stepping it forward steps the
// underlying iterator back.
type ReverseIter[T any] struct {
	current Iter[T]
}

// NewReverseIter returns a reverse iterator at node walking order o backwards.
func NewReverseIter[T any](node *Node[T], o Order) *ReverseIter[T] {
	return &ReverseIter[T]{current: *NewIter(node, o)}
}

// Empty checks is nothing to iterate
func (r *ReverseIter[T]) Empty() bool {
	return r.current.Empty()
}

// Next iterates to the previous element of the underlying order
func (r *ReverseIter[T]) Next() bool {
	return r.current.Prev()
}

// Prev iterates to the next element of the underlying order
func (r *ReverseIter[T]) Prev() bool {
	return r.current.Next()
}

// Item returns the key at the current position.
func (r *ReverseIter[T]) Item() (T, error) {
	return r.current.Item()
}

// Equal reports whether both reverse iterators stand on the same position.
func (r *ReverseIter[T]) Equal(other *ReverseIter[T]) bool {
	return r.current.Equal(&other.current)
}

// Base returns a forward iterator at the same node.
func (r *ReverseIter[T]) Base() *Iter[T] {
	return r.current.Clone()
}

// ForEach applies f for each item towards the beginning of the order
func (r *ReverseIter[T]) ForEach(f ForEachFunc[T]) {
	for ; !r.Empty(); r.Next() {
		if !f(r.current.node.Key) {
			break
		}
	}
}
