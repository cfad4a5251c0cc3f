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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SelectionSort has no early exit: n(n-1)/2 comparisons for any input.
func TestSelectionSortComparisons(t *testing.T) {
	r := rand.New(rand.NewPCG(8, 8))
	inputs := map[string][]int{
		"sorted":  {1, 2, 3, 4, 5, 6, 7, 8, 9},
		"reverse": {9, 8, 7, 6, 5, 4, 3, 2, 1},
		"equal":   {4, 4, 4, 4, 4, 4, 4, 4, 4},
		"random":  randomInts(r, 9, 100),
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			var calls int
			got := SelectionSortFunc(in, counting(func(a, b int) int { return a - b }, &calls))

			require.True(t, IsSorted(got))
			assert.Equal(t, len(in)*(len(in)-1)/2, calls)
		})
	}
}

// Equal elements are never exchanged with each other: only a strictly
// smaller element replaces the current minimum.
func TestSelectionSortAllEqualUntouched(t *testing.T) {
	in := taggedFrom(3, 3, 3, 3)
	got := SelectionSortFunc(slices.Clone(in), byKey)
	require.Equal(t, in, got)
}

func TestSelectionSortNotStable(t *testing.T) {
	// The first swap moves {2,0} behind {2,1}.
	got := SelectionSortFunc(taggedFrom(2, 2, 1), byKey)
	require.Equal(t, []tagged{{1, 2}, {2, 1}, {2, 0}}, got)
}
