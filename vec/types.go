// Package vec provides small fixed-arity numeric vectors (2, 3 or 4
// components) over a lattice of eleven scalar kinds: signed and unsigned
// integers of 8, 16, 32 and 64 bits, and half, single and double precision
// floats.
//
// Two parts carry the interesting decisions. The conversion lattice
// classifies every ordered pair of kinds as an identity, an implicit
// (value-preserving) widening or an explicit (possibly lossy) conversion,
// with a single uniform wrap/truncate policy for the lossy cases. The
// bit-packing codec places the components of a vector into the bits of one
// 32- or 64-bit word using caller-chosen field widths.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-fixvec/vec"
//
//	v := vec.New4[uint8](10, 20, 30, 40)
//	word, _ := vec.PackFixed[uint32](v) // 0x281E140A
//
//	w := vec.New2[int32](3, 4)
//	sq := vec.Map(w, func(x int32) int64 { return int64(x) * int64(x) }) // (9, 16)
//
// All values are immutable and every function is pure, so everything here is
// safe for concurrent use without synchronization.
package vec

// Floats is a constraint for floating-point lane types, including Float16.
type Floats interface {
	Float16 | float32 | float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector
// components. Types are listed exactly (no ~) so that Float16, whose
// underlying type is uint16, keeps its own kind.
type Lanes interface {
	Floats | Integers
}

// MaxLen is the largest supported arity.
const MaxLen = 4

// MinLen is the smallest supported arity.
const MinLen = 2

// Vec is an immutable vector of 2, 3 or 4 components of one scalar kind.
//
// Vec is a value type: copies are independent and == compares arity and
// components. Storage past Len is always zero so that equality stays
// structural.
type Vec[T Lanes] struct {
	n     uint8
	lanes [MaxLen]T
}

// Len returns the number of components.
func (v Vec[T]) Len() int {
	return int(v.n)
}

// Kind returns the scalar kind of the components.
func (v Vec[T]) Kind() Kind {
	return KindOf[T]()
}

// At returns component i, or an *IndexError when i is outside [0, Len).
func (v Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= int(v.n) {
		var zero T
		return zero, &IndexError{Index: i, Len: int(v.n)}
	}
	return v.lanes[i], nil
}

// X returns component 0.
func (v Vec[T]) X() T { return v.lanes[0] }

// Y returns component 1.
func (v Vec[T]) Y() T { return v.lanes[1] }

// Z returns component 2, or zero for a 2-component vector.
func (v Vec[T]) Z() T { return v.lanes[2] }

// W returns component 3, or zero for vectors shorter than 4.
func (v Vec[T]) W() T { return v.lanes[3] }

// Lanes returns a copy of the components as a slice.
func (v Vec[T]) Lanes() []T {
	out := make([]T, v.n)
	copy(out, v.lanes[:v.n])
	return out
}

// With returns a copy of v with component i replaced by x.
func (v Vec[T]) With(i int, x T) (Vec[T], error) {
	if i < 0 || i >= int(v.n) {
		return v, &IndexError{Index: i, Len: int(v.n)}
	}
	v.lanes[i] = x
	return v, nil
}
