// Package itertools provides small generic helpers over range-over-func
// iterators, used where a sequence of ids needs to be walked without first
// materializing a slice.
package itertools

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range yields every integer in [start, end).
func Range[Int constraints.Integer](start, end Int) iter.Seq[Int] {
	return func(yield func(Int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
