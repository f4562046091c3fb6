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

// Map applies f to every component of v, in order, and returns the results as
// a vector of the same arity. The result kind may differ from the source kind.
//
// Example:
//
//	v := vec.New2[int32](3, 4)
//	sq := vec.Map(v, func(x int32) int64 { return int64(x) * int64(x) }) // (9, 16)
func Map[D, S Lanes](v Vec[S], f func(S) D) Vec[D] {
	out := Vec[D]{n: v.n}
	for i := range int(v.n) {
		out.lanes[i] = f(v.lanes[i])
	}
	return out
}

// MapIndexed is like Map but also passes the component index to f.
func MapIndexed[D, S Lanes](v Vec[S], f func(i int, x S) D) Vec[D] {
	out := Vec[D]{n: v.n}
	for i := range int(v.n) {
		out.lanes[i] = f(i, v.lanes[i])
	}
	return out
}

// Zip combines a and b componentwise with f. Both vectors must have the same
// arity.
func Zip[D, A, B Lanes](a Vec[A], b Vec[B], f func(A, B) D) (Vec[D], error) {
	if a.n != b.n {
		return Vec[D]{}, configErrorf("zip", "arity mismatch: %d vs %d", a.n, b.n)
	}
	out := Vec[D]{n: a.n}
	for i := range int(a.n) {
		out.lanes[i] = f(a.lanes[i], b.lanes[i])
	}
	return out, nil
}

// Reduce folds the components of v from index 0 upward, starting at init.
func Reduce[T Lanes, R any](v Vec[T], init R, f func(acc R, x T) R) R {
	acc := init
	for i := range int(v.n) {
		acc = f(acc, v.lanes[i])
	}
	return acc
}
