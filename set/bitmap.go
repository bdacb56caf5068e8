package set

import (
	"math"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/exp/constraints"

	"github.com/neganovalexey/bstset/bst"
	"github.com/neganovalexey/bstset/codeerrors"
)

// ToBitmap exports integer keys of s into a roaring bitmap.
// Keys outside [0, MaxUint32] can not be represented.
func ToBitmap[T constraints.Integer](s *Set[T]) (*roaring.Bitmap, error) {
	vals := make([]uint32, 0, s.Size())
	for it := s.Begin(bst.InOrder); !it.Empty(); it.Next() {
		key, _ := it.Item()
		if key < 0 || uint64(key) > math.MaxUint32 {
			return nil, codeerrors.ErrOutOfRange.WithMessage("key %v does not fit into bitmap", key)
		}
		vals = append(vals, uint32(key))
	}
	return roaring.BitmapOf(vals...), nil
}

// FromBitmap builds a set from bitmap values. Values that do not fit T
// are rejected.
func FromBitmap[T constraints.Integer](bm *roaring.Bitmap, cfg Config) (*Set[T], error) {
	s := NewWithConfig[T](cfg)
	for it := bm.Iterator(); it.HasNext(); {
		val := it.Next()
		key := T(val)
		if key < 0 || uint32(key) != val {
			return nil, codeerrors.ErrOutOfRange.WithMessage("value %d does not fit key type %T", val, key)
		}
		s.tree.Insert(key)
	}
	return s, nil
}
