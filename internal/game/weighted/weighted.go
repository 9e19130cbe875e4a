// Package weighted provides deterministic seeded selection from weighted
// candidate sets. It is the single source of randomness for level-up and
// spell draws: every caller supplies its own seed, the package holds no
// hidden RNG state, so replays are reproducible from the seeds alone.
package weighted

// Entry is one selectable candidate with a non-negative weight.
// A zero-weight entry may occupy a position in the set but is never chosen.
type Entry[T any] struct {
	Item   T
	Weight uint32
}

// Pick deterministically selects one entry with probability proportional to
// its weight across uniformly drawn seeds.
//
// The seed is mapped into [0, totalWeight) and the first entry whose
// cumulative weight exceeds the mapped value wins; entry order is therefore
// part of the contract when weights tie.
//
// Postcondition: the same seed and the same entries (same order) always
// produce the same result. Returns (zero, false) when entries is empty or
// every weight is zero — a valid "no candidate" outcome, not an error.
func Pick[T any](seed uint32, entries []Entry[T]) (T, bool) {
	var total uint32
	for _, e := range entries {
		total += e.Weight
	}

	var zero T
	if total == 0 {
		return zero, false
	}

	target := seed % total
	var cum uint32
	for _, e := range entries {
		cum += e.Weight
		if target < cum {
			return e.Item, true
		}
	}

	// Unreachable: target < total and the final cumulative sum equals total.
	return zero, false
}

// Queue accumulates weighted candidates for a single draw. It mirrors the
// push-then-draw shape used by the progression planner.
type Queue[T any] struct {
	entries []Entry[T]
}

// NewQueue returns a Queue with capacity reserved for n candidates.
func NewQueue[T any](n int) *Queue[T] {
	return &Queue[T]{entries: make([]Entry[T], 0, n)}
}

// Push appends a candidate. Zero-weight candidates are accepted; they occupy
// a position but cannot be drawn.
func (q *Queue[T]) Push(item T, weight uint32) {
	q.entries = append(q.entries, Entry[T]{Item: item, Weight: weight})
}

// Len returns the number of pushed candidates, including zero-weight ones.
func (q *Queue[T]) Len() int {
	return len(q.entries)
}

// Pick draws one candidate using the given seed.
//
// Postcondition: deterministic for a fixed seed and push sequence; returns
// (zero, false) when nothing is drawable.
func (q *Queue[T]) Pick(seed uint32) (T, bool) {
	return Pick(seed, q.entries)
}
