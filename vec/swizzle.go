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

// This file provides shuffle and permutation operations. A swizzle is an
// index permutation (with repetition allowed), so one indexed function covers
// every named accessor such as v.zyx or v.xxyy.

// Swizzle builds a new vector whose component i is v's component idx[i].
// The result has len(idx) components, which must be 2, 3 or 4.
func Swizzle[T Lanes](v Vec[T], idx ...int) (Vec[T], error) {
	if err := checkLen("swizzle", len(idx)); err != nil {
		return Vec[T]{}, err
	}
	out := Vec[T]{n: uint8(len(idx))}
	for i, j := range idx {
		if j < 0 || j >= int(v.n) {
			return Vec[T]{}, &IndexError{Index: j, Len: int(v.n)}
		}
		out.lanes[i] = v.lanes[j]
	}
	return out, nil
}

// SwizzleNamed is Swizzle with component letters: "xyzw" or "rgba", for
// example "zyx" or "rrga". The two alphabets may not be mixed.
func SwizzleNamed[T Lanes](v Vec[T], pattern string) (Vec[T], error) {
	if err := checkLen("swizzle", len(pattern)); err != nil {
		return Vec[T]{}, err
	}
	idx := make([]int, len(pattern))
	set := ""
	for i := range len(pattern) {
		c := pattern[i]
		j, s := swizzleIndex(c)
		if j < 0 {
			return Vec[T]{}, configErrorf("swizzle", "invalid component %q in %q", c, pattern)
		}
		if set != "" && s != set {
			return Vec[T]{}, configErrorf("swizzle", "mixed component sets in %q", pattern)
		}
		set = s
		idx[i] = j
	}
	return Swizzle(v, idx...)
}

func swizzleIndex(c byte) (int, string) {
	switch c {
	case 'x':
		return 0, "xyzw"
	case 'y':
		return 1, "xyzw"
	case 'z':
		return 2, "xyzw"
	case 'w':
		return 3, "xyzw"
	case 'r':
		return 0, "rgba"
	case 'g':
		return 1, "rgba"
	case 'b':
		return 2, "rgba"
	case 'a':
		return 3, "rgba"
	}
	return -1, ""
}

// Reverse reverses the order of the components.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	out := Vec[T]{n: v.n}
	n := int(v.n)
	for i := range n {
		out.lanes[i] = v.lanes[n-1-i]
	}
	return out
}
