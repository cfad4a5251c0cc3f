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

import "github.com/ajroetker/go-algo/algo"

// InsertionSort sorts s in ascending order and returns it.
//
// The returned slice is s itself: the elements are reordered in place and
// the length and capacity are unchanged. The sort is stable. It runs in
// O(n²) time in the worst case and O(n) when s is already sorted.
func InsertionSort[S ~[]E, E algo.Ordered](s S) S {
	insertionSort(s, algo.Compare[E])
	return s
}

// InsertionSortFunc sorts s in ascending order as determined by cmp and
// returns it. Elements comparing equal keep their relative order.
//
// If cmp is not a strict weak ordering the final order is unspecified, but
// s still holds every original element exactly once.
func InsertionSortFunc[S ~[]E, E any](s S, cmp func(a, b E) int) S {
	mustCompare(cmp)
	insertionSort(s, cmp)
	return s
}

// insertionSort keeps s[:j] sorted while moving s[j] into place. The key is
// held in a local while strictly greater elements are relocated one slot to
// the right, then it is written into the gap.
func insertionSort[E any](s []E, cmp func(a, b E) int) {
	for j := 1; j < len(s); j++ {
		key := s[j]
		i := j - 1
		for i >= 0 && cmp(s[i], key) > 0 {
			relocate(s, i+1, i)
			i--
		}
		s[i+1] = key
	}
}
