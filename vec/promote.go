package vec

// Go generics cannot express "D is wider than S", so the implicit conversions
// of the lattice are checked at run time against the kind table. Promote is
// the value-preserving counterpart of Convert.

// Promote converts v from S to D when the conversion is an identity or an
// implicit widening, and reports ok=false (with a zero vector) otherwise.
// A successful Promote never changes any component's value.
func Promote[D, S Lanes](v Vec[S]) (Vec[D], bool) {
	if !IsImplicit(KindOf[S](), KindOf[D]()) {
		return Vec[D]{}, false
	}
	return Convert[D](v), true
}

// CanPromote reports whether Promote[D, S] succeeds.
func CanPromote[D, S Lanes]() bool {
	return IsImplicit(KindOf[S](), KindOf[D]())
}

// PromoteToFloat64 widens a half or float32 vector to float64. The edge is
// always implicit, so no ok result is needed.
func PromoteToFloat64[T Float16 | float32](v Vec[T]) Vec[float64] {
	return Convert[float64](v)
}

// DemoteToFloat32 narrows a float64 vector to float32 with round-to-nearest-even.
func DemoteToFloat32(v Vec[float64]) Vec[float32] {
	return Convert[float32](v)
}
