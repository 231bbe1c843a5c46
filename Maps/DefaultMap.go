package Maps

import (
	"github.com/cornelk/hashmap"
	"github.com/sephirothx/dstruct"
)

// DefaultMap is a map that creates the value of a missing key on first access, using a
// factory. It is backed by a lock free hash map, so concurrent Get and Set calls are
// safe; two concurrent Gets of the same missing key may both call the factory but
// agree on one value.
type DefaultMap[K Key, V any] struct {
	m   *hashmap.Map[K, V]
	def func(K) V
}

// NewDefaultMap returns an empty DefaultMap using def to create missing values.
func NewDefaultMap[K Key, V any](def func(K) V) (*DefaultMap[K, V], error) {
	if def == nil {
		return nil, &dstruct.InvalidArgumentError{Name: "def", Reason: "nil factory"}
	}
	return &DefaultMap[K, V]{hashmap.New[K, V](), def}, nil
}

// Zero returns a factory that gives the zero value of V.
func Zero[K Key, V any]() func(K) V {
	return func(K) V { return *new(V) }
}

// Get the value of k, inserting a new one from the factory if k is missing.
func (u *DefaultMap[K, V]) Get(k K) V {
	if v, ok := u.m.Get(k); ok {
		return v
	}
	v, _ := u.m.GetOrInsert(k, u.def(k))
	return v
}

// Lookup the value of k without inserting.
func (u *DefaultMap[K, V]) Lookup(k K) (V, bool) {
	return u.m.Get(k)
}

func (u *DefaultMap[K, V]) Set(k K, v V) {
	u.m.Set(k, v)
}

func (u *DefaultMap[K, V]) Has(k K) bool {
	_, ok := u.m.Get(k)
	return ok
}

func (u *DefaultMap[K, V]) Delete(k K) bool {
	return u.m.Del(k)
}

func (u *DefaultMap[K, V]) Len() int {
	return u.m.Len()
}

// Range calls f for every key and value in no particular order, until f returns false.
func (u *DefaultMap[K, V]) Range(f func(K, V) bool) {
	u.m.Range(f)
}
