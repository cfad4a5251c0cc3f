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

// SelectionSort sorts s in ascending order and returns it.
//
// The returned slice is s itself. The sort is not stable: moving the minimum
// into place may carry an element past others equal to it. It always makes
// n(n-1)/2 comparisons and at most n-1 swaps.
func SelectionSort[S ~[]E, E algo.Ordered](s S) S {
	selectionSort(s, algo.Compare[E])
	return s
}

// SelectionSortFunc sorts s in ascending order as determined by cmp and
// returns it.
func SelectionSortFunc[S ~[]E, E any](s S, cmp func(a, b E) int) S {
	mustCompare(cmp)
	selectionSort(s, cmp)
	return s
}

// selectionSort grows a sorted prefix holding the smallest elements. The
// minimum of the suffix is tracked by index, so candidates are compared in
// place and never copied out of the buffer.
func selectionSort[E any](s []E, cmp func(a, b E) int) {
	n := len(s)
	for j := 0; j < n-1; j++ {
		smallest := j
		for i := j + 1; i < n; i++ {
			if cmp(s[i], s[smallest]) < 0 {
				smallest = i
			}
		}
		if smallest != j {
			exchange(s, j, smallest)
		}
	}
}
