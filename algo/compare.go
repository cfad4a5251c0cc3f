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

package algo

// isNaN reports whether x is a NaN without requiring a float type.
func isNaN[E Ordered](x E) bool {
	return x != x
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b.
//
// For floating-point types a NaN is considered less than any non-NaN, and
// two NaNs are equal, so Compare is a total order for every Ordered type.
// -0.0 and 0.0 compare equal.
func Compare[E Ordered](a, b E) int {
	xNaN := isNaN(a)
	yNaN := isNaN(b)
	if xNaN {
		if yNaN {
			return 0
		}
		return -1
	}
	if yNaN {
		return +1
	}
	if a < b {
		return -1
	}
	if a > b {
		return +1
	}
	return 0
}

// Less reports whether a is less than b under the order used by Compare.
func Less[E Ordered](a, b E) bool {
	return (isNaN(a) && !isNaN(b)) || a < b
}

// Reverse returns a CompareFunc that orders elements in the opposite
// direction of cmp.
func Reverse[E any](cmp CompareFunc[E]) CompareFunc[E] {
	return func(a, b E) int {
		return cmp(b, a)
	}
}
