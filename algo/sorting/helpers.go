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

// IsSorted reports whether s is sorted in ascending order.
func IsSorted[S ~[]E, E algo.Ordered](s S) bool {
	return isSorted(s, algo.Compare[E])
}

// IsSortedFunc reports whether s is sorted in ascending order as determined
// by cmp.
func IsSortedFunc[S ~[]E, E any](s S, cmp func(a, b E) int) bool {
	mustCompare(cmp)
	return isSorted(s, cmp)
}

func isSorted[E any](s []E, cmp func(a, b E) int) bool {
	for i := len(s) - 1; i > 0; i-- {
		if cmp(s[i], s[i-1]) < 0 {
			return false
		}
	}
	return true
}
