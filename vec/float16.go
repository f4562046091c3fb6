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

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number.
// It wraps uint16 for storage but provides float semantics.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Properties:
//   - Exponent bias: 15
//   - Max value: 65504
//   - Min positive normal: 2^-14
//   - Integers are exact up to 2048
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero      Float16 = 0x0000
	Float16NegZero   Float16 = 0x8000
	Float16One       Float16 = 0x3C00
	Float16NegOne    Float16 = 0xBC00
	Float16MaxValue  Float16 = 0x7BFF // 65504
	Float16MinNormal Float16 = 0x0400 // 2^-14
	Float16MinValue  Float16 = 0x0001 // 2^-24, smallest denormal
	Float16Inf       Float16 = 0x7C00
	Float16NegInf    Float16 = 0xFC00
	Float16NaN       Float16 = 0x7E00 // canonical quiet NaN

	float16ExpBias      = 15
	float16MantissaBits = 10
	float16MantissaMask = 0x3FF
	float16SignMask     = 0x8000
)

// Float16ToFloat32 converts h to float32. Every half value is exactly
// representable in float32, so this never rounds.
func Float16ToFloat32(h Float16) float32 {
	bits := uint32(h)
	sign := (bits & float16SignMask) << 16
	exp := (bits >> float16MantissaBits) & 0x1F
	mant := bits & float16MantissaMask

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Denormal: renormalize so the leading one becomes implicit.
		e := uint32(127 - float16ExpBias + 1)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= float16MantissaMask
		return math.Float32frombits(sign | e<<23 | mant<<13)
	case 0x1F:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		return math.Float32frombits(sign | 0x7FC00000 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+127-float16ExpBias)<<23 | mant<<13)
	}
}

// Float32ToFloat16 converts f to Float16 with round-to-nearest-even.
// Overflow goes to infinity, underflow to zero or a denormal.
func Float32ToFloat16(f float32) Float16 {
	// float32 -> float64 is exact, so this rounds exactly once.
	return Float64ToFloat16(float64(f))
}

// Float64ToFloat16 converts f to Float16 with a single round-to-nearest-even
// step. Going through float32 first would round twice.
func Float64ToFloat16(f float64) Float16 {
	bits := math.Float64bits(f)
	sign := uint16(bits>>48) & float16SignMask
	exp := int(bits>>52) & 0x7FF
	mant := bits & (1<<52 - 1)

	switch {
	case exp == 0x7FF:
		if mant != 0 {
			return Float16(sign | uint16(Float16NaN) | uint16(mant>>42))
		}
		return Float16(sign | uint16(Float16Inf))
	case exp == 0:
		// float64 denormals are far below the half range.
		return Float16(sign)
	}

	e := exp - 1023
	if e > float16ExpBias {
		return Float16(sign | uint16(Float16Inf))
	}

	// Keep 11 significant bits for normals; denormals lose one more bit per
	// step below the minimum exponent.
	m := mant | 1<<52
	shift := uint(52 - float16MantissaBits)
	if e < 1-float16ExpBias {
		shift += uint(1 - float16ExpBias - e)
	}
	if shift >= 64 {
		return Float16(sign)
	}
	q := m >> shift
	rem := m & (1<<shift - 1)
	half := uint64(1) << (shift - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}

	// q carries the implicit bit for normals, so adding it to the biased
	// exponent minus one lets a rounding carry bump the exponent (up to Inf).
	out := q
	if e >= 1-float16ExpBias {
		out += uint64(e+float16ExpBias-1) << float16MantissaBits
	}
	return Float16(sign | uint16(out))
}

// IsNaN returns true if h is a NaN value.
func (h Float16) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&float16MantissaMask != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&0x7FFF == 0x7C00
}

// IsZero returns true if h is positive or negative zero.
func (h Float16) IsZero() bool {
	return h&0x7FFF == 0
}

// IsNegative returns true if the sign bit is set.
func (h Float16) IsNegative() bool {
	return h&float16SignMask != 0
}

// IsDenormal returns true if h is a denormalized number.
func (h Float16) IsDenormal() bool {
	return h&0x7C00 == 0 && h&float16MantissaMask != 0
}

// Float32 converts h to float32.
func (h Float16) Float32() float32 {
	return Float16ToFloat32(h)
}

// Float64 converts h to float64.
func (h Float16) Float64() float64 {
	return float64(Float16ToFloat32(h))
}

// NewFloat16 creates a Float16 from a float32 value.
func NewFloat16(f float32) Float16 {
	return Float32ToFloat16(f)
}

// Bits returns the raw uint16 representation.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// Float16FromBits creates a Float16 from raw bits.
func Float16FromBits(bits uint16) Float16 {
	return Float16(bits)
}
