// Copyright 2025 go-fixvec Authors
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

package vec

// This file provides saturated arithmetic and related operations.
// Saturated operations clamp results to the kind's range instead of wrapping.
// Like the other binary operations they use the shorter arity of a and b.

// SaturatedAdd performs component-wise addition with saturation.
// For example, uint8: 250 + 10 = 255 (not 4).
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	return binaryOp(a, b, saturatedAdd[T], nil)
}

// SaturatedSub performs component-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246).
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	return binaryOp(a, b, saturatedSub[T], nil)
}

// Clamp limits each component of v to [lo, hi].
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	return Min(Max(v, lo), hi)
}

// AbsDiff returns |a - b| per component. Signed results that do not fit
// wrap, as Sub does.
func AbsDiff[T Lanes](a, b Vec[T]) Vec[T] {
	return binaryOp(a, b,
		func(x, y T) T {
			if x < y {
				return y - x
			}
			return x - y
		},
		func(x, y float32) float32 {
			if x < y {
				return y - x
			}
			return x - y
		})
}

// Avg returns the rounded-up average (a + b + 1) / 2 per component without
// intermediate overflow.
func Avg[T UnsignedInts](a, b Vec[T]) Vec[T] {
	return binaryOp(a, b,
		func(x, y T) T { return x>>1 + y>>1 + (x|y)&1 },
		nil)
}

// limits returns the smallest and largest values of integer kind T.
func limits[T Integers]() (lo, hi T) {
	bits := KindOf[T]().Bits()
	if KindOf[T]().Signed() {
		return fromBits[T](1 << uint(bits-1)), fromBits[T](lowMask(bits - 1))
	}
	return 0, fromBits[T](lowMask(bits))
}

func saturatedAdd[T Integers](a, b T) T {
	sum := a + b
	lo, hi := limits[T]()
	if lo == 0 {
		if sum < a {
			return hi
		}
		return sum
	}
	// Signed overflow: both operands share a sign the sum lacks.
	if (a < 0) == (b < 0) && (sum < 0) != (a < 0) {
		if a < 0 {
			return lo
		}
		return hi
	}
	return sum
}

func saturatedSub[T Integers](a, b T) T {
	diff := a - b
	lo, hi := limits[T]()
	if lo == 0 {
		if b > a {
			return 0
		}
		return diff
	}
	if (a < 0) != (b < 0) && (diff < 0) != (a < 0) {
		if a < 0 {
			return lo
		}
		return hi
	}
	return diff
}
