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

// This file provides componentwise arithmetic. All operations are
// type-homogeneous: mixing kinds requires an explicit Convert or Promote
// first. Integer arithmetic wraps; Float16 arithmetic is carried out in
// float32 and rounded back. When arities differ, the shorter one wins.

// binaryOp applies native to each pair of components, or half after widening
// when T is Float16 (whose Go operators would act on the raw bits).
func binaryOp[T Lanes](a, b Vec[T], native func(x, y T) T, half func(x, y float32) float32) Vec[T] {
	n := min(a.n, b.n)
	out := Vec[T]{n: n}
	if KindOf[T]() == Half {
		for i := range int(n) {
			x := any(a.lanes[i]).(Float16).Float32()
			y := any(b.lanes[i]).(Float16).Float32()
			out.lanes[i] = any(Float32ToFloat16(half(x, y))).(T)
		}
		return out
	}
	for i := range int(n) {
		out.lanes[i] = native(a.lanes[i], b.lanes[i])
	}
	return out
}

// Add performs componentwise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binaryOp(a, b,
		func(x, y T) T { return x + y },
		func(x, y float32) float32 { return x + y })
}

// Sub performs componentwise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binaryOp(a, b,
		func(x, y T) T { return x - y },
		func(x, y float32) float32 { return x - y })
}

// Mul performs componentwise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binaryOp(a, b,
		func(x, y T) T { return x * y },
		func(x, y float32) float32 { return x * y })
}

// Div performs componentwise division. Integer division by zero yields 0
// so that the operation stays total; float division follows IEEE 754.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	isFloat := KindOf[T]().IsFloat()
	return binaryOp(a, b,
		func(x, y T) T {
			if y == 0 && !isFloat {
				return 0
			}
			return x / y
		},
		func(x, y float32) float32 { return x / y })
}

// Scale multiplies every component of v by s.
func Scale[T Lanes](v Vec[T], s T) Vec[T] {
	sv := Vec[T]{n: v.n}
	for i := range int(v.n) {
		sv.lanes[i] = s
	}
	return Mul(v, sv)
}

// Neg negates every component. Unsigned components wrap.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return Map(v, negHelper[T])
}

func negHelper[T Lanes](x T) T {
	if h, ok := any(x).(Float16); ok {
		return any(h ^ float16SignMask).(T)
	}
	return -x
}

// Abs computes the absolute value of every component. The most negative
// signed integer maps to itself.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return Map(v, func(x T) T {
		if h, ok := any(x).(Float16); ok {
			return any(h &^ float16SignMask).(T)
		}
		if x < 0 {
			return -x
		}
		return x
	})
}

func lessHelper[T Lanes](a, b T) bool {
	if av, ok := any(a).(Float16); ok {
		return av.Float32() < any(b).(Float16).Float32()
	}
	return a < b
}

// Min returns the componentwise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	out := Vec[T]{n: n}
	for i := range int(n) {
		if lessHelper(b.lanes[i], a.lanes[i]) {
			out.lanes[i] = b.lanes[i]
		} else {
			out.lanes[i] = a.lanes[i]
		}
	}
	return out
}

// Max returns the componentwise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	out := Vec[T]{n: n}
	for i := range int(n) {
		if lessHelper(a.lanes[i], b.lanes[i]) {
			out.lanes[i] = b.lanes[i]
		} else {
			out.lanes[i] = a.lanes[i]
		}
	}
	return out
}

// ReduceSum adds all components.
func ReduceSum[T Lanes](v Vec[T]) T {
	if KindOf[T]() == Half {
		var sum float32
		for i := range int(v.n) {
			sum += any(v.lanes[i]).(Float16).Float32()
		}
		return any(Float32ToFloat16(sum)).(T)
	}
	var sum T
	for i := range int(v.n) {
		sum += v.lanes[i]
	}
	return sum
}

// Dot returns the sum of the componentwise products of a and b.
func Dot[T Lanes](a, b Vec[T]) T {
	return ReduceSum(Mul(a, b))
}
