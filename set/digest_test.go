package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	a := New(18, 5, 3, 4, 1)
	b := New(18, 5, 3, 4, 1)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	// same keys, different shape
	assert.NotEqual(t, New(1, 2, 3).Fingerprint(), New(2, 1, 3).Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), New(18, 3, 4, 1).Fingerprint())

	assert.Equal(t, New[string]().Fingerprint(), New[string]().Fingerprint())
	assert.NotEqual(t, New("a", "bc").Fingerprint(), New("ab", "c").Fingerprint())
}
