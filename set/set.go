// Package set implements an ordered set on top of an unbalanced,
// parent-linked binary search tree. Every set can be walked in-order,
// pre-order or post-order, forwards and backwards.
package set

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/neganovalexey/bstset/bst"
	"github.com/neganovalexey/bstset/codeerrors"
)

// Config of the set
type Config struct {
	// Log receives debug records about bulk structural changes.
	// logrus.StandardLogger() is used if nil.
	Log *logrus.Logger
}

// Set is a duplicate-free ordered collection of keys.
// It is not safe for concurrent use.
type Set[T constraints.Ordered] struct {
	tree *bst.Tree[T]
	log  *logrus.Logger
}

// New creates a set holding keys
func New[T constraints.Ordered](keys ...T) *Set[T] {
	return NewWithConfig(Config{}, keys...)
}

// NewWithConfig creates a set with given config holding keys
func NewWithConfig[T constraints.Ordered](cfg Config, keys ...T) *Set[T] {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Set[T]{tree: bst.New[T](), log: log}
	s.InsertRange(keys...)
	return s
}

// Clone returns a deep copy of the set with the same tree shape
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{tree: s.tree.Copy(), log: s.log}
}

// Assign replaces the contents of the set with keys
func (s *Set[T]) Assign(keys ...T) {
	s.tree.Deallocate()
	s.InsertRange(keys...)
}

// Size returns number of keys in the set
func (s *Set[T]) Size() int {
	return s.tree.Count()
}

// MaxSize returns the theoretical limit of keys a set can hold
func (s *Set[T]) MaxSize() int {
	var node bst.Node[T]
	return math.MaxInt / int(unsafe.Sizeof(node))
}

// Empty checks there are no keys in the set
func (s *Set[T]) Empty() bool {
	return s.Begin(bst.InOrder).Equal(s.End(bst.InOrder))
}

// Begin returns an iterator at the first key of order o
func (s *Set[T]) Begin(o bst.Order) *bst.Iter[T] {
	return s.tree.First(o)
}

// End returns the end sentinel of order o
func (s *Set[T]) End(o bst.Order) *bst.Iter[T] {
	return bst.NewIter[T](nil, o)
}

// RBegin returns a reverse iterator at the last key of order o
func (s *Set[T]) RBegin(o bst.Order) *bst.ReverseIter[T] {
	return s.tree.Last(o).Reverse()
}

// REnd returns the sentinel one step past the first key of order o
func (s *Set[T]) REnd(o bst.Order) *bst.ReverseIter[T] {
	return bst.NewReverseIter[T](nil, o)
}

// Insert key into the set. The returned in-order iterator points at the
// key whether or not it was inserted by this call.
func (s *Set[T]) Insert(key T) (*bst.Iter[T], bool) {
	node, inserted := s.tree.Insert(key)
	return bst.NewIter(node, bst.InOrder), inserted
}

// InsertRange inserts keys in order and returns how many were new
func (s *Set[T]) InsertRange(keys ...T) (inserted int) {
	for _, key := range keys {
		if _, ok := s.tree.Insert(key); ok {
			inserted++
		}
	}
	return inserted
}

// Emplace inserts keys in order and stops at the first one already present,
// returning an iterator to it and false. Otherwise it returns an iterator to
// the last inserted key and true.
func (s *Set[T]) Emplace(keys ...T) (*bst.Iter[T], bool) {
	iter, inserted := s.End(bst.InOrder), false
	for _, key := range keys {
		if iter, inserted = s.Insert(key); !inserted {
			break
		}
	}
	return iter, inserted
}

// Erase removes the key at it and returns an iterator to the key that
// followed it in its order. Erasing at end returns end.
//
// Removing a node with two children promotes its in-order successor into
// the erased slot. In pre-order that slot lies before the returned
// iterator, so a loop of the form
//
//	for it := s.Begin(bst.PreOrder); !it.Empty(); it = s.Erase(it) {}
//
// skips the promoted keys and may leave some in the set. The same loop
// clears the set in InOrder and PostOrder; use Clear to empty it.
func (s *Set[T]) Erase(it *bst.Iter[T]) *bst.Iter[T] {
	key, err := it.Item()
	if err != nil {
		return s.End(it.Order())
	}
	// removal may move keys between nodes, so remember the key, not the node
	next := it.Clone()
	hasNext := next.Next()
	nextKey, _ := next.Item()

	s.tree.Remove(key)
	if !hasNext {
		return s.End(it.Order())
	}
	return bst.NewIter(s.tree.Find(nextKey), it.Order())
}

// EraseRange removes keys from first up to, but not including, last and
// returns an iterator to last's key. The range is walked in first's order;
// last only marks where it stops.
func (s *Set[T]) EraseRange(first, last *bst.Iter[T]) *bst.Iter[T] {
	last = last.WithOrder(first.Order())
	var keys []T
	for it := first.Clone(); !it.Empty() && !it.Equal(last); it.Next() {
		key, _ := it.Item()
		keys = append(keys, key)
	}
	lastKey, err := last.Item()

	for _, key := range keys {
		s.tree.Remove(key)
	}
	s.log.WithFields(logrus.Fields{
		"order":  first.Order(),
		"erased": len(keys),
	}).Debug("set: erased range")

	if err != nil {
		return s.End(last.Order())
	}
	return bst.NewIter(s.tree.Find(lastKey), last.Order())
}

// EraseKey removes key and returns number of removed keys (0 or 1)
func (s *Set[T]) EraseKey(key T) int {
	if s.tree.Remove(key) {
		return 1
	}
	return 0
}

// Count returns 1 if key is present, else 0
func (s *Set[T]) Count(key T) int {
	if s.tree.Find(key) != nil {
		return 1
	}
	return 0
}

// Find returns an in-order iterator at key, or end
func (s *Set[T]) Find(key T) *bst.Iter[T] {
	return bst.NewIter(s.tree.Find(key), bst.InOrder)
}

// Contains checks key is present
func (s *Set[T]) Contains(key T) bool {
	return s.tree.Find(key) != nil
}

// LowerBound returns an in-order iterator at the first key >= key
func (s *Set[T]) LowerBound(key T) *bst.Iter[T] {
	node := s.tree.Find(key)
	if node == nil {
		node = s.tree.Next(key)
	}
	return bst.NewIter(node, bst.InOrder)
}

// UpperBound returns an in-order iterator at the first key > key
func (s *Set[T]) UpperBound(key T) *bst.Iter[T] {
	return bst.NewIter(s.tree.Next(key), bst.InOrder)
}

// Extract removes key from the set and returns it in a detached node.
// The set is left untouched if key is missing.
func (s *Set[T]) Extract(key T) (*bst.Node[T], error) {
	node := s.tree.Find(key)
	if node == nil {
		s.log.WithField("key", key).Debug("set: extract of missing key")
		return nil, errors.Wrap(codeerrors.ErrNotFound.WithMessage("key %v not found", key), "Extract()")
	}
	extracted := bst.NewNode(node.Key)
	s.tree.Remove(key)
	return extracted, nil
}

// Merge moves every key of source into s. Keys already present in s are
// dropped; source always ends up empty.
func (s *Set[T]) Merge(source *Set[T]) {
	if source == s {
		return
	}
	moved, dropped := 0, 0
	for !source.Empty() {
		key := source.tree.Root().Key
		source.tree.Remove(key)
		if _, ok := s.tree.Insert(key); ok {
			moved++
		} else {
			dropped++
		}
	}
	s.log.WithFields(logrus.Fields{
		"moved":   moved,
		"dropped": dropped,
		"size":    s.Size(),
	}).Debug("set: merged")
}

// Clear removes all keys
func (s *Set[T]) Clear() {
	released := s.tree.Deallocate()
	s.log.WithField("released", released).Debug("set: cleared")
}

// Swap exchanges contents of two sets
func (s *Set[T]) Swap(other *Set[T]) {
	s.tree.Swap(other.tree)
}

// Equal compares pre-order key sequences of two sets. It is sensitive to
// tree shape: sets holding the same keys built in different orders may
// compare unequal. Use SameElements for plain set equality.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s == other {
		return true
	}
	if s.Size() != other.Size() {
		return false
	}
	return sameSequence(s.Begin(bst.PreOrder), other.Begin(bst.PreOrder))
}

// SameElements checks both sets hold exactly the same keys
func (s *Set[T]) SameElements(other *Set[T]) bool {
	if s == other {
		return true
	}
	if s.Size() != other.Size() {
		return false
	}
	return sameSequence(s.Begin(bst.InOrder), other.Begin(bst.InOrder))
}

// Keys returns all keys in order o
func (s *Set[T]) Keys(o bst.Order) []T {
	return s.tree.Items(o)
}

// String returns a string representation of container
func (s *Set[T]) String() string {
	return s.tree.String()
}

func sameSequence[T constraints.Ordered](a, b *bst.Iter[T]) bool {
	for ; !a.Empty() && !b.Empty(); a.Next() {
		ka, _ := a.Item()
		kb, _ := b.Item()
		if ka < kb || kb < ka {
			return false
		}
		b.Next()
	}
	return a.Empty() && b.Empty()
}
