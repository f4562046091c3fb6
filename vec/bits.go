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

import "math"

// toBits returns the natural unsigned bit pattern of x, zero-extended to 64
// bits. Signed integers are reinterpreted, never sign-extended.
func toBits[T Lanes](x T) uint64 {
	switch val := any(x).(type) {
	case int8:
		return uint64(uint8(val))
	case int16:
		return uint64(uint16(val))
	case int32:
		return uint64(uint32(val))
	case int64:
		return uint64(val)
	case uint8:
		return uint64(val)
	case uint16:
		return uint64(val)
	case uint32:
		return uint64(val)
	case uint64:
		return val
	case Float16:
		return uint64(val)
	case float32:
		return uint64(math.Float32bits(val))
	case float64:
		return math.Float64bits(val)
	default:
		return 0
	}
}

// fromBits builds a T from the low Bits(T) bits of b. Higher bits are
// discarded.
func fromBits[T Lanes](b uint64) T {
	var out T
	switch p := any(&out).(type) {
	case *int8:
		*p = int8(b)
	case *int16:
		*p = int16(b)
	case *int32:
		*p = int32(b)
	case *int64:
		*p = int64(b)
	case *uint8:
		*p = uint8(b)
	case *uint16:
		*p = uint16(b)
	case *uint32:
		*p = uint32(b)
	case *uint64:
		*p = b
	case *Float16:
		*p = Float16(uint16(b))
	case *float32:
		*p = math.Float32frombits(uint32(b))
	case *float64:
		*p = math.Float64frombits(b)
	}
	return out
}

// RawBits returns the natural unsigned bit pattern of x, zero-extended to 64
// bits: two's complement for signed integers and IEEE 754 bits for floats.
func RawBits[T Lanes](x T) uint64 {
	return toBits(x)
}

// FromRawBits reinterprets the low bits of b as a T. It is the inverse of
// RawBits.
func FromRawBits[T Lanes](b uint64) T {
	return fromBits[T](b)
}

// lowMask returns a mask of the low n bits, for n in [0, 64].
func lowMask(n int) uint64 {
	if n >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(n) - 1
}
