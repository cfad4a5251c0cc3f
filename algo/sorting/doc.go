// Package sorting provides generic in-place comparison sorts.
//
// The core primitives are InsertionSort and SelectionSort. Both take a slice,
// reorder its elements within the same backing array and return the very
// same slice: base, length and capacity are never changed, and nothing is
// allocated in proportion to the input.
//
// # Algorithms
//
//   - InsertionSort: stable, O(n²) worst case, O(n) on sorted input
//   - SelectionSort: not stable, always n(n-1)/2 comparisons, at most n-1 swaps
//   - Sort: introsort (insertion sort for small runs, 3-way quicksort,
//     heapsort fallback), not stable, O(n log n)
//   - NthElement: quickselect, leaves the k-th smallest element at index k
//
// Every operation has a Func variant taking a comparison function with the
// semantics of algo.CompareFunc. It works for any element type, including
// ones that own heap memory.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-algo/algo/sorting"
//
//	func Ranks(scores []int) []int {
//	    return sorting.InsertionSort(scores)
//	}
//
// # Concurrency
//
// The sorts are synchronous and run on the calling goroutine. The caller must
// not read or write the slice from another goroutine until the call returns.
package sorting
