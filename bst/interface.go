package bst

// ForEachFunc is func, that runs for each item
type ForEachFunc[T any] func(item T) bool

// Cursor is the common surface of forward and reverse iterators
type Cursor[T any] interface {
	Item() (item T, err error)

	Empty() bool
	Next() bool
	Prev() bool

	// iterate starting from current pos
	ForEach(f ForEachFunc[T])
}

// nolint:unused, deadcode
func assertInterfaces() {
	var _ Cursor[int] = (*Iter[int])(nil)
	var _ Cursor[int] = (*ReverseIter[int])(nil)
}
