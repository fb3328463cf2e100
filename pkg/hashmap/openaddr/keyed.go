package openaddr

import "fmt"

// Keyed is a Map whose keys are projected to strings by a caller supplied
// function. The projection must be stable: equal keys must always
// produce the same string.
type Keyed[K any, V any] struct {
	key func(K) string
	m   *Map[V]
}

// NewKeyed returns a Keyed map using key as the string projection
func NewKeyed[K any, V any](key func(K) string, conf *MapConfig) *Keyed[K, V] {
	return &Keyed[K, V]{
		key: key,
		m:   New[V](conf),
	}
}

// StringerKey is a projection for keys implementing fmt.Stringer
func StringerKey[K fmt.Stringer](k K) string {
	return k.String()
}

func (km *Keyed[K, V]) Get(key K) (V, error) {
	return km.m.Get(km.key(key))
}

func (km *Keyed[K, V]) Has(key K) bool {
	return km.m.Has(km.key(key))
}

func (km *Keyed[K, V]) Set(key K, val V) {
	km.m.Set(km.key(key), val)
}

func (km *Keyed[K, V]) Del(key K) error {
	return km.m.Del(km.key(key))
}

func (km *Keyed[K, V]) Len() int {
	return km.m.Len()
}

func (km *Keyed[K, V]) Cap() int {
	return km.m.Cap()
}

// Map returns the underlying string keyed Map
func (km *Keyed[K, V]) Map() *Map[V] {
	return km.m
}
