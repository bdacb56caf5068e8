package set

import (
	"fmt"

	"github.com/spaolacci/murmur3"

	"github.com/neganovalexey/bstset/bst"
)

// Fingerprint returns a 64-bit murmur3 digest of the pre-order key
// sequence. Sets that are Equal have equal fingerprints, so the digest
// identifies a tree shape, not just its key set.
func (s *Set[T]) Fingerprint() uint64 {
	h := murmur3.New64()
	for it := s.Begin(bst.PreOrder); !it.Empty(); it.Next() {
		key, _ := it.Item()
		fmt.Fprintf(h, "%#v;", key)
	}
	return h.Sum64()
}
