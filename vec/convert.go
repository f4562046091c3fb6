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

// This file holds the conversion lattice. Instead of one hand-written routine
// per (source, destination) pair, every pair is classified by a single rule
// over the kind table, and every conversion goes through one scalar routine
// that applies a fixed lossy-conversion policy:
//
//   - integer -> integer: two's-complement bit truncation, or sign/zero
//     extension when widening. Never saturates.
//   - float -> integer: truncate toward zero, then keep the low Bits(D) bits
//     of the exact integer. NaN and ±Inf become 0.
//   - -> float: round to nearest even. Half is reached in one rounding step.

// Conversion classifies a conversion between two scalar kinds.
type Conversion uint8

const (
	// Identity is a conversion from a kind to itself; it preserves bits.
	Identity Conversion = iota

	// ImplicitWidening never loses information for any source value.
	ImplicitWidening

	// ExplicitLossy may lose precision, range or sign for some source value
	// and must be requested deliberately.
	ExplicitLossy
)

// String returns a human-readable name for the conversion class.
func (c Conversion) String() string {
	switch c {
	case Identity:
		return "identity"
	case ImplicitWidening:
		return "implicit widening"
	case ExplicitLossy:
		return "explicit lossy"
	default:
		return "unknown"
	}
}

// Classify returns the conversion class from src to dst.
//
// A conversion is an implicit widening iff the destination can hold every
// source value exactly: a signed source needs a signed destination, a float
// source needs a float destination, the destination must carry at least as
// many exact binary digits, and a float may only widen in storage (which
// also widens its exponent range).
func Classify(src, dst Kind) Conversion {
	if src == dst {
		return Identity
	}
	s, d := src.Info(), dst.Info()
	switch {
	case s.Signed && !d.Signed:
		return ExplicitLossy
	case s.Float && !d.Float:
		return ExplicitLossy
	case s.Float && d.Bits < s.Bits:
		return ExplicitLossy
	case s.Digits > d.Digits:
		return ExplicitLossy
	}
	return ImplicitWidening
}

// IsImplicit reports whether converting src to dst never loses information.
func IsImplicit(src, dst Kind) bool {
	return Classify(src, dst) != ExplicitLossy
}

var lattice = func() (m [NumKinds][NumKinds]Conversion) {
	for s := range NumKinds {
		for d := range NumKinds {
			m[s][d] = Classify(Kind(s), Kind(d))
		}
	}
	return m
}()

// Lattice returns the full classification matrix, indexed [src][dst].
func Lattice() [NumKinds][NumKinds]Conversion {
	return lattice
}

// ConvertScalar converts one value from S to D. It is total: every bit
// pattern of S maps to some D following the package's lossy-conversion
// policy.
func ConvertScalar[D, S Lanes](x S) D {
	switch val := any(x).(type) {
	case int8:
		return fromInt64[D](int64(val))
	case int16:
		return fromInt64[D](int64(val))
	case int32:
		return fromInt64[D](int64(val))
	case int64:
		return fromInt64[D](val)
	case uint8:
		return fromUint64[D](uint64(val))
	case uint16:
		return fromUint64[D](uint64(val))
	case uint32:
		return fromUint64[D](uint64(val))
	case uint64:
		return fromUint64[D](val)
	case Float16:
		return fromFloat64[D](val.Float64())
	case float32:
		return fromFloat64[D](float64(val))
	case float64:
		return fromFloat64[D](val)
	}
	var zero D
	return zero
}

func fromInt64[D Lanes](i int64) D {
	var out D
	switch p := any(&out).(type) {
	case *Float16:
		// Integers beyond float64's exact range are far past half's max,
		// so the extra rounding step cannot change the result.
		*p = Float64ToFloat16(float64(i))
	case *float32:
		*p = float32(i)
	case *float64:
		*p = float64(i)
	default:
		return fromBits[D](uint64(i))
	}
	return out
}

func fromUint64[D Lanes](u uint64) D {
	var out D
	switch p := any(&out).(type) {
	case *Float16:
		*p = Float64ToFloat16(float64(u))
	case *float32:
		*p = float32(u)
	case *float64:
		*p = float64(u)
	default:
		return fromBits[D](u)
	}
	return out
}

func fromFloat64[D Lanes](f float64) D {
	var out D
	switch p := any(&out).(type) {
	case *Float16:
		*p = Float64ToFloat16(f)
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	default:
		return fromBits[D](truncBits(f))
	}
	return out
}

// truncBits truncates f toward zero and returns the low 64 bits of the
// resulting integer in two's complement. NaN and ±Inf give 0.
func truncBits(f float64) uint64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	t := math.Trunc(f)
	a := math.Abs(t)

	var u uint64
	if a < 1<<63 {
		u = uint64(a)
	} else {
		// |t| >= 2^63: the integer is mantissa << (exp-52), with exp >= 63.
		b := math.Float64bits(a)
		shift := int(b>>52&0x7FF) - 1023 - 52
		if shift < 64 {
			u = (b&(1<<52-1) | 1<<52) << uint(shift)
		}
	}
	if t < 0 {
		u = -u
	}
	return u
}

// Convert converts every component of v from S to D. This is the explicit
// conversion: it is always allowed and may be lossy (see ConvertScalar).
func Convert[D, S Lanes](v Vec[S]) Vec[D] {
	out := Vec[D]{n: v.n}
	for i := range int(v.n) {
		out.lanes[i] = ConvertScalar[D](v.lanes[i])
	}
	return out
}

// BitCast reinterprets the bits of every component of v as D. S and D must
// have the same storage width.
func BitCast[D, S Lanes](v Vec[S]) (Vec[D], error) {
	src, dst := KindOf[S](), KindOf[D]()
	if src.Bits() != dst.Bits() {
		return Vec[D]{}, configErrorf("bitcast", "cannot reinterpret %d-bit %s as %d-bit %s",
			src.Bits(), src, dst.Bits(), dst)
	}
	out := Vec[D]{n: v.n}
	for i := range int(v.n) {
		out.lanes[i] = fromBits[D](toBits(v.lanes[i]))
	}
	return out, nil
}
