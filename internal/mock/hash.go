package mock

import (
	"github.com/cespare/xxhash/v2"
)

// hashKey is the single source of determinism: a stable 64-bit digest of
// the parts, each terminated by a NUL so ("ab","c") and ("a","bc") differ.
func hashKey(parts ...string) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.WriteString(p)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// pick selects a pool entry for the digest.
func pick(pool []string, h uint64) string {
	return pool[h%uint64(len(pool))]
}
