// Package dice provides the injected randomness abstraction used by map
// generation, enemy selection, deck shuffling and recruitment.
package dice

// Source is the randomness provider for every random decision in the core.
//
// Implementations need not be safe for concurrent use; the core is single-writer.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Chance reports whether an event with probability p (0.0 to 1.0) occurs.
// Probabilities are resolved in basis points so a Source can drive them exactly.
//
// Postcondition: p <= 0 always returns false; p >= 1 always returns true.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Intn(10000) < int(p*10000)
}

// Range returns a uniformly chosen int in [lo, hi].
//
// Precondition: lo <= hi.
func Range(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}

// Shuffle permutes s in place using a Fisher-Yates pass driven by src.
//
// Postcondition: s holds the same multiset of elements.
func Shuffle[T any](src Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Pick returns a uniformly chosen element of s and true, or the zero value and false if s is empty.
func Pick[T any](src Source, s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[src.Intn(len(s))], true
}

// Sample returns k distinct elements of s chosen without replacement.
//
// Postcondition: len(result) == min(k, len(s)); s is not modified.
func Sample[T any](src Source, s []T, k int) []T {
	pool := make([]T, len(s))
	copy(pool, s)
	if k > len(pool) {
		k = len(pool)
	}
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}
