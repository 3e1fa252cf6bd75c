package kit

import "sync"

// Memoize wraps fn with a cache keyed by its argument. The returned function
// is safe for concurrent use; fn may run more than once for the same key if
// callers race on a cold entry.
func Memoize[K comparable, V any](fn func(K) V) func(K) V {
	var mu sync.RWMutex
	cache := make(map[K]V)

	return func(k K) V {
		mu.RLock()
		v, ok := cache[k]
		mu.RUnlock()
		if ok {
			return v
		}

		v = fn(k)
		mu.Lock()
		cache[k] = v
		mu.Unlock()
		return v
	}
}

// Intner is the random source Shuffle draws from.
type Intner interface {
	Intn(n int) int
}

// Shuffle returns a Fisher-Yates shuffled copy of items; items is not modified.
func Shuffle[T any](src Intner, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
