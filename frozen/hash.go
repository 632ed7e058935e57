package frozen

import (
	"github.com/cespare/xxhash/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// Hash combines the digests of all key/value pairs with XOR, so it does not
// depend on insertion order. It is computed once per Map.
//
// Pairs are hashed by walking their values: pointers are followed, and maps
// and structs are hashed by content. Maps that are Equal therefore hash equal,
// whatever path built them.
func (fm *Map[K, V]) Hash() uint64 {
	fm.hashOnce.Do(func() {
		for k, v := range fm.m {
			fm.hash ^= pairHash(k, v)
		}
	})
	return fm.hash
}

type pair struct {
	Key   any
	Value any
}

// pairHash falls back to the key alone when the value holds a kind that cannot
// be walked (funcs, channels), and to zero when the key cannot be walked either.
func pairHash(k, v any) uint64 {
	if h, err := walkHash(pair{Key: k, Value: v}); err == nil {
		return h
	}
	if h, err := walkHash(pair{Key: k}); err == nil {
		return h
	}
	return 0
}

func walkHash(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, &hashstructure.HashOptions{
		Hasher: xxhash.New(),
	})
}
