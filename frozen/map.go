// Package frozen provides Map, an immutable mapping. Every update returns a
// new Map and leaves the receiver untouched, so a Map can be shared between
// goroutines and used where a stable hash is needed.
package frozen

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"reflect"
	"sync"

	"github.com/huandu/go-clone"
	"github.com/samber/mo"
)

// ErrKeyNotFound is wrapped by Index when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// Map must be used by pointer. The zero value is an empty map.
type Map[K comparable, V any] struct {
	m map[K]V

	hashOnce sync.Once
	hash     uint64
}

// New copies m into a new Map. Later changes to m are not seen.
func New[K comparable, V any](m map[K]V) *Map[K, V] {
	return &Map[K, V]{m: maps.Clone(m)}
}

// Empty returns a Map with no entries.
func Empty[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: map[K]V{}}
}

// FromKeys maps every key to v.
func FromKeys[K comparable, V any](keys []K, v V) *Map[K, V] {
	m := make(map[K]V, len(keys))
	for _, k := range keys {
		m[k] = v
	}
	return &Map[K, V]{m: m}
}

// FromSeq2 collects the pairs of seq. Later pairs win on duplicate keys.
func FromSeq2[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	return &Map[K, V]{m: maps.Collect(seq)}
}

// CombineMaps is a.Combine(b).
func CombineMaps[K comparable, V any](a, b *Map[K, V]) *Map[K, V] {
	return a.Combine(b)
}

// Index returns the value for k, or an error wrapping ErrKeyNotFound.
func (fm *Map[K, V]) Index(k K) (V, error) {
	v, ok := fm.m[k]
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return v, nil
}

// MustGet is like Index but panics when k is absent.
func (fm *Map[K, V]) MustGet(k K) V {
	v, err := fm.Index(k)
	if err != nil {
		panic(err)
	}
	return v
}

// Get returns the value for k and whether it was present.
func (fm *Map[K, V]) Get(k K) (V, bool) {
	v, ok := fm.m[k]
	return v, ok
}

// GetOption returns the value for k as a present or absent option.
func (fm *Map[K, V]) GetOption(k K) mo.Option[V] {
	if v, ok := fm.m[k]; ok {
		return mo.Some(v)
	}
	return mo.None[V]()
}

// Contains reports whether k is present.
func (fm *Map[K, V]) Contains(k K) bool {
	_, ok := fm.m[k]
	return ok
}

// Len returns the number of entries.
func (fm *Map[K, V]) Len() int {
	return len(fm.m)
}

// Put returns a deep copy of fm with k set to v.
func (fm *Map[K, V]) Put(k K, v V) *Map[K, V] {
	next, _ := clone.Clone(fm.m).(map[K]V)
	if next == nil {
		next = make(map[K]V, 1)
	}
	next[k] = v
	return &Map[K, V]{m: next}
}

// Delete returns a copy of fm without k, or fm itself when k is absent.
func (fm *Map[K, V]) Delete(k K) *Map[K, V] {
	if !fm.Contains(k) {
		return fm
	}
	next := maps.Clone(fm.m)
	delete(next, k)
	return &Map[K, V]{m: next}
}

// Combine returns the union of fm and other. Values of other win on
// shared keys.
func (fm *Map[K, V]) Combine(other *Map[K, V]) *Map[K, V] {
	if other == nil {
		return fm
	}
	next := make(map[K]V, len(fm.m)+len(other.m))
	maps.Copy(next, fm.m)
	maps.Copy(next, other.m)
	return &Map[K, V]{m: next}
}

// Keys iterates the keys in unspecified order.
func (fm *Map[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(fm.m)
}

// Values iterates the values in unspecified order.
func (fm *Map[K, V]) Values() iter.Seq[V] {
	return maps.Values(fm.m)
}

// All iterates the pairs in unspecified order.
func (fm *Map[K, V]) All() iter.Seq2[K, V] {
	return maps.All(fm.m)
}

// Raw returns a shallow copy of the underlying map.
func (fm *Map[K, V]) Raw() map[K]V {
	raw := maps.Clone(fm.m)
	if raw == nil {
		raw = map[K]V{}
	}
	return raw
}

// Equal reports whether fm and other hold equal entries. A nil other is empty.
func (fm *Map[K, V]) Equal(other *Map[K, V]) bool {
	if fm == other {
		return true
	}
	if other == nil {
		return len(fm.m) == 0
	}
	return fm.EqualRaw(other.m)
}

// EqualRaw compares fm with a plain map. Values are compared with
// reflect.DeepEqual.
func (fm *Map[K, V]) EqualRaw(m map[K]V) bool {
	if len(fm.m) != len(m) {
		return false
	}
	for k, v := range fm.m {
		w, ok := m[k]
		if !ok || !reflect.DeepEqual(v, w) {
			return false
		}
	}
	return true
}

// String renders fm as frozen.Map(map[k:v ...]).
func (fm *Map[K, V]) String() string {
	return fmt.Sprintf("frozen.Map(%v)", fm.m)
}
