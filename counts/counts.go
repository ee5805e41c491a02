// counts contains arithmetic helpers over maps holding integer values, such
// as vocabulary tables that assign each key a dense id.
package counts

// PutIncrementing stores start, start+1, ... for keys in order. A key
// repeated in keys keeps the last value assigned to it.
func PutIncrementing[K comparable](m map[K]int, keys []K, start int) {
	for _, k := range keys {
		m[k] = start
		start++
	}
}

// IncrementRange adds delta to the value of each key in keys whose value v
// satisfies from <= v <= to. Each distinct original value is shifted at most
// once, so two keys sharing a value only see the first one updated. Keys
// absent from m are skipped.
func IncrementRange[K comparable](m map[K]int, keys []K, delta, from, to int) {
	incremented := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v < from || v > to {
			continue
		}
		if _, done := incremented[v]; done {
			continue
		}
		m[k] = v + delta
		incremented[v] = struct{}{}
	}
}

// Increment adds delta to the value stored under key and returns the result.
func Increment[K comparable](m map[K]int, key K, delta int) int {
	m[key] += delta
	return m[key]
}
