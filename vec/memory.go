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

import (
	"strconv"
	"strings"
)

// New2 creates a 2-component vector.
func New2[T Lanes](x, y T) Vec[T] {
	return Vec[T]{n: 2, lanes: [MaxLen]T{x, y}}
}

// New3 creates a 3-component vector.
func New3[T Lanes](x, y, z T) Vec[T] {
	return Vec[T]{n: 3, lanes: [MaxLen]T{x, y, z}}
}

// New4 creates a 4-component vector.
func New4[T Lanes](x, y, z, w T) Vec[T] {
	return Vec[T]{n: 4, lanes: [MaxLen]T{x, y, z, w}}
}

// Load creates a vector from src, which must hold 2, 3 or 4 elements.
func Load[T Lanes](src []T) (Vec[T], error) {
	if err := checkLen("load", len(src)); err != nil {
		return Vec[T]{}, err
	}
	v := Vec[T]{n: uint8(len(src))}
	copy(v.lanes[:], src)
	return v, nil
}

// Store writes the components of v to dst and returns how many were written,
// which is min(len(dst), v.Len()).
func Store[T Lanes](v Vec[T], dst []T) int {
	return copy(dst, v.lanes[:v.n])
}

// Splat creates an n-component vector with every component set to x.
func Splat[T Lanes](n int, x T) (Vec[T], error) {
	if err := checkLen("splat", n); err != nil {
		return Vec[T]{}, err
	}
	v := Vec[T]{n: uint8(n)}
	for i := range n {
		v.lanes[i] = x
	}
	return v, nil
}

// Zero creates an n-component vector of zeros.
func Zero[T Lanes](n int) (Vec[T], error) {
	if err := checkLen("zero", n); err != nil {
		return Vec[T]{}, err
	}
	return Vec[T]{n: uint8(n)}, nil
}

func checkLen(op string, n int) error {
	if n < MinLen || n > MaxLen {
		return configErrorf(op, "arity %d outside [%d,%d]", n, MinLen, MaxLen)
	}
	return nil
}

// String formats v as "(x, y, ...)".
func (v Vec[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := range int(v.n) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatLane(v.lanes[i]))
	}
	b.WriteByte(')')
	return b.String()
}

func formatLane[T Lanes](x T) string {
	switch val := any(x).(type) {
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case Float16:
		return strconv.FormatFloat(float64(val.Float32()), 'g', -1, 32)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return "?"
	}
}
