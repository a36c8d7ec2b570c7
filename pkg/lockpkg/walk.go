package lockpkg

import "iter"

// DefaultMaxDepth bounds the number of layers the collector expands.
const DefaultMaxDepth = 1000

// Bounded yields 0..limit-1. If the loop runs to the bound without the caller
// breaking out, onExhausted is called once after the last value. Each range
// over the returned sequence starts over.
func Bounded(limit int, onExhausted func()) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range limit {
			if !yield(i) {
				return
			}
		}
		if limit > 0 && onExhausted != nil {
			onExhausted()
		}
	}
}
