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

// Package algo holds the element constraints and comparison helpers shared
// by the algorithm packages of this module.
//
// Algorithms come in two forms. The plain form is constrained by Ordered and
// uses the built-in order of the element type:
//
//	s = sorting.InsertionSort(s)
//
// The Func form accepts any element type together with a CompareFunc:
//
//	s = sorting.InsertionSortFunc(s, func(a, b Record) int {
//	    return algo.Compare(a.Key, b.Key)
//	})
package algo

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for all types with a built-in order, i.e. the
// types supporting the < and > operators.
type Ordered interface {
	Integers | Floats | ~string
}

// CompareFunc reports the order of a and b: a negative number when a < b,
// zero when they are equivalent and a positive number when a > b.
//
// It must describe a strict weak ordering for the algorithms to produce a
// sorted result. A comparator that does not still never causes elements to
// be lost or duplicated; only their final order is unspecified.
type CompareFunc[E any] func(a, b E) int
