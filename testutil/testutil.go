package testutil

import (
	"crypto/sha512"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strconv"
)

// ShuffledKeys returns keys 0..n-1 in a stable pseudo-random order for given seed
func ShuffledKeys(n int, seed int64) []int {
	keys := AscendingKeys(n)
	rnd := rand.New(rand.NewSource(seed))
	rnd.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}

// AscendingKeys returns keys 0..n-1 in ascending order (the degenerate insert order)
func AscendingKeys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// SparseKeys returns n distinct keys drawn from [0, 4n) in a stable pseudo-random order
func SparseKeys(n int, seed int64) []int {
	rnd := rand.New(rand.NewSource(seed))
	seen := make(map[int]struct{}, n)
	keys := make([]int, 0, n)
	for len(keys) < n {
		k := rnd.Intn(4 * n)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// RandomStrKey returns stable random key for given n of length sz
// nolint: unparam
func RandomStrKey(n, sz int) (res string) {
	for len(res) < sz {
		buf := [8]byte{}
		binary.BigEndian.PutUint64(buf[:], uint64(n))
		h := sha512.Sum512(buf[:])
		res = res + base64.StdEncoding.EncodeToString(h[:])
	}
	return res[:sz]
}

// AscendingStrKey returns stable ascending keys for given n of length sz
func AscendingStrKey(n int, sz int) string {
	if len(strconv.Itoa(n)) > sz {
		panic("too small string size")
	}
	return fmt.Sprintf("%0*d", sz, n)
}
