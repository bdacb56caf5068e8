package bst

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neganovalexey/bstset/codeerrors"
)

func TestIterDerefEnd(t *testing.T) {
	iter := NewIter[int](nil, InOrder)
	_, err := iter.Item()
	require.EqualError(t, err, "Dereferencing null pointer.")
	require.True(t, errors.Is(err, codeerrors.ErrInvalidArgument))

	rit := NewReverseIter[int](nil, InOrder)
	_, err = rit.Item()
	require.EqualError(t, err, "Dereferencing null pointer.")
}

func TestIterStepFromEnd(t *testing.T) {
	for _, o := range Orders {
		iter := NewIter[int](nil, o)
		assert.False(t, iter.Next())
		assert.False(t, iter.Prev())
		assert.False(t, iter.HasNext())
		assert.True(t, iter.Empty())
	}
}

func TestIterEqual(t *testing.T) {
	tree := referenceTree()
	root := tree.Root()

	assert.True(t, NewIter(root, PreOrder).Equal(tree.First(PreOrder)))
	assert.False(t, NewIter(root, InOrder).Equal(tree.First(PreOrder)))
	assert.True(t, NewIter[int](nil, InOrder).Equal(NewIter[int](nil, InOrder)))
	assert.False(t, NewIter[int](nil, InOrder).Equal(NewIter[int](nil, PostOrder)))

	iter := tree.First(InOrder)
	clone := iter.Clone()
	iter.Next()
	assert.False(t, iter.Equal(clone))
	item, err := clone.Item()
	require.NoError(t, err)
	assert.Equal(t, 1, item)
}

func TestIterWithOrder(t *testing.T) {
	tree := referenceTree()
	iter := NewIter(tree.Find(4), InOrder)

	require.True(t, iter.Next())
	item, _ := iter.Item()
	assert.Equal(t, 5, item)

	pre := NewIter(tree.Find(4), InOrder).WithOrder(PreOrder)
	assert.Equal(t, PreOrder, pre.Order())
	require.True(t, pre.Next())
	item, _ = pre.Item()
	assert.Equal(t, 1, item)
}

func TestIterHasNextAndForEach(t *testing.T) {
	tree := referenceTree()

	iter := tree.Last(PostOrder)
	assert.False(t, iter.HasNext())
	iter = tree.First(PostOrder)
	assert.True(t, iter.HasNext())

	var items []int
	iter.ForEach(func(item int) bool {
		items = append(items, item)
		return item != 6
	})
	assert.Equal(t, []int{2, 1, 4, 6}, items)
	item, _ := iter.Item()
	assert.Equal(t, 6, item)
}

func TestReverseIter(t *testing.T) {
	tree := referenceTree()

	rit := NewReverseIter(tree.Last(InOrder).node, InOrder)
	rend := NewReverseIter[int](nil, InOrder)

	var items []int
	for ; !rit.Equal(rend); rit.Next() {
		item, err := rit.Item()
		require.NoError(t, err)
		items = append(items, item)
	}
	assert.Equal(t, []int{8, 7, 6, 5, 4, 2, 1}, items)

	rit = NewReverseIter(tree.Find(4), InOrder)
	require.True(t, rit.Prev())
	item, _ := rit.Item()
	assert.Equal(t, 5, item)
	assert.True(t, rit.Base().Equal(NewIter(tree.Find(5), InOrder)))
}
