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

// relocate moves the element in slot src into slot dst. The previous
// occupant of dst must already live elsewhere (in the other slot or in a
// local), so no element is lost. Slot src keeps a stale copy until it is
// overwritten by the caller.
func relocate[E any](s []E, dst, src int) {
	s[dst] = s[src]
}

// exchange swaps slots i and j in one assignment; both slots hold a valid
// element before and after.
func exchange[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// mustCompare panics if cmp is nil.
func mustCompare[E any](cmp func(a, b E) int) {
	if cmp == nil {
		panic("sorting: nil compare function")
	}
}
