// Package assoc provides the small associative-map operations the type
// registry is built from. There is one map-backed implementation; callers
// never see the map type directly in registry code, only these operations.
package assoc

// Pair is one key/value association.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// FromPairs builds a map from pairs. Later pairs win when a key repeats.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	m := make(map[K]V, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return m
}

// Pairs enumerates m. Order is unspecified.
func Pairs[K comparable, V any](m map[K]V) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return pairs
}

// Get returns the value for key and whether it was present.
func Get[K comparable, V any](m map[K]V, key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

// GetOr returns the value for key, or def when key is absent.
func GetOr[K comparable, V any](m map[K]V, key K, def V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Union returns a new map holding every entry of left and right, with right
// winning when a key appears in both. Neither input is modified.
func Union[K comparable, V any](left, right map[K]V) map[K]V {
	m := make(map[K]V, len(left)+len(right))
	for k, v := range left {
		m[k] = v
	}
	for k, v := range right {
		m[k] = v
	}
	return m
}
