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

// Partition3Way performs 3-way partitioning of s around pivot.
// Returns (lt, gt) indices where:
//   - s[0:lt] < pivot
//   - s[lt:gt] == pivot
//   - s[gt:n] > pivot
func Partition3Way[S ~[]E, E algo.Ordered](s S, pivot E) (lt, gt int) {
	return partition3Way(s, pivot, algo.Compare[E])
}

// Partition3WayFunc is like Partition3Way but orders elements with cmp.
func Partition3WayFunc[S ~[]E, E any](s S, pivot E, cmp func(a, b E) int) (lt, gt int) {
	mustCompare(cmp)
	return partition3Way(s, pivot, cmp)
}

// partition3Way is the Dutch National Flag partition.
func partition3Way[E any](s []E, pivot E, cmp func(a, b E) int) (int, int) {
	lt := 0
	gt := len(s)
	i := 0

	for i < gt {
		c := cmp(s[i], pivot)
		switch {
		case c < 0:
			exchange(s, lt, i)
			lt++
			i++
		case c > 0:
			gt--
			exchange(s, i, gt)
		default:
			i++
		}
	}

	return lt, gt
}

// PivotSampled selects a pivot by sampling elements at regular intervals.
// Small slices use the median of the first, middle and last elements.
// It panics if s is empty.
func PivotSampled[S ~[]E, E algo.Ordered](s S) E {
	return pivotSampled(s, algo.Compare[E])
}

func pivotSampled[E any](s []E, cmp func(a, b E) int) E {
	n := len(s)
	if n <= pivotSampleThreshold {
		return medianOf3(s[0], s[n/2], s[n-1], cmp)
	}

	samples := [5]E{
		s[0],
		s[n/4],
		s[n/2],
		s[3*n/4],
		s[n-1],
	}
	insertionSort(samples[:], cmp)
	return samples[2]
}

func medianOf3[E any](a, b, c E, cmp func(a, b E) int) E {
	if cmp(a, b) > 0 {
		a, b = b, a
	}
	if cmp(b, c) > 0 {
		b = c
		if cmp(a, b) > 0 {
			b = a
		}
	}
	return b
}
