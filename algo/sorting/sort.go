// Copyright 2025 go-algo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sorting

import (
	"math/bits"

	"github.com/ajroetker/go-algo/algo"
)

// Sort sorts s in ascending order and returns it.
// This is an introsort variant that combines:
//   - Insertion sort for small runs
//   - 3-way quicksort partitioning around a sampled pivot
//   - Heapsort fallback for an O(n log n) worst case
//
// The sort is not stable. For a stable sort use InsertionSort.
func Sort[S ~[]E, E algo.Ordered](s S) S {
	introSort(s, maxDepth(len(s)), algo.Compare[E])
	return s
}

// SortFunc sorts s in ascending order as determined by cmp and returns it.
func SortFunc[S ~[]E, E any](s S, cmp func(a, b E) int) S {
	mustCompare(cmp)
	introSort(s, maxDepth(len(s)), cmp)
	return s
}

// maxDepth returns the recursion budget before falling back to heapsort:
// 2 * ceil(log2(n+1)).
func maxDepth(n int) int {
	return 2 * bits.Len(uint(n))
}

func introSort[E any](s []E, depthLimit int, cmp func(a, b E) int) {
	for len(s) > insertionThreshold {
		if depthLimit == 0 {
			heapSort(s, cmp)
			return
		}
		depthLimit--

		pivot := pivotSampled(s, cmp)
		lt, gt := partition3Way(s, pivot, cmp)

		// Recurse into the smaller side, loop on the larger.
		if lt < len(s)-gt {
			introSort(s[:lt], depthLimit, cmp)
			s = s[gt:]
		} else {
			introSort(s[gt:], depthLimit, cmp)
			s = s[:lt]
		}
	}
	insertionSort(s, cmp)
}

// heapSort is the O(n log n) worst-case fallback.
func heapSort[E any](s []E, cmp func(a, b E) int) {
	n := len(s)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, cmp)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		exchange(s, 0, i)
		siftDown(s, 0, i, cmp)
	}
}

func siftDown[E any](s []E, i, n int, cmp func(a, b E) int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && cmp(s[left], s[largest]) > 0 {
			largest = left
		}
		if right < n && cmp(s[right], s[largest]) > 0 {
			largest = right
		}

		if largest == i {
			break
		}

		exchange(s, i, largest)
		i = largest
	}
}

// NthElement rearranges s such that the element at index k is the element
// that would be at that position if s were sorted.
// Elements before k are <= s[k], elements after are >= s[k].
// It does nothing if k is out of range.
func NthElement[S ~[]E, E algo.Ordered](s S, k int) {
	nthElement(s, k, algo.Compare[E])
}

// NthElementFunc is like NthElement but orders elements with cmp.
func NthElementFunc[S ~[]E, E any](s S, k int, cmp func(a, b E) int) {
	mustCompare(cmp)
	nthElement(s, k, cmp)
}

func nthElement[E any](s []E, k int, cmp func(a, b E) int) {
	if k < 0 || k >= len(s) {
		return
	}

	depthLimit := maxDepth(len(s))
	for len(s) > insertionThreshold {
		if depthLimit == 0 {
			heapSort(s, cmp)
			return
		}
		depthLimit--

		pivot := pivotSampled(s, cmp)
		lt, gt := partition3Way(s, pivot, cmp)

		switch {
		case k < lt:
			s = s[:lt]
		case k >= gt:
			s = s[gt:]
			k -= gt
		default:
			// k is in the equal partition
			return
		}
	}
	insertionSort(s, cmp)
}
