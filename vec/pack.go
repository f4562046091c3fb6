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
	"fmt"
	"strings"
)

// Bit-packing places the N components of a vector into one 32- or 64-bit
// word. Field i holds the low widths[i] bits of component i's raw bit pattern
// and sits directly above fields 0..i-1:
//
//	word = f0 | f1<<w0 | f2<<(w0+w1) | f3<<(w0+w1+w2)
//
// Format for New4[uint8](10, 20, 30, 40) with the fixed 8-bit layout:
//
//	bits 31..24  23..16  15..8   7..0
//	     0x28    0x1E    0x14    0x0A   -> 0x281E140A
//
// Raw bit patterns are used for every kind: signed integers are taken as
// two's-complement bits and are neither sign-extended on unpack nor
// range-checked on pack, and floats contribute their IEEE bits. A value
// wider than its field loses its high bits; that is the documented lossy
// behavior, not an error. Only impossible layouts are errors.

// Word is the constraint for packed word types.
type Word interface {
	uint32 | uint64
}

// WordBits returns the width of W in bits.
func WordBits[W Word]() int {
	var w W
	if _, ok := any(w).(uint32); ok {
		return 32
	}
	return 64
}

// Layout is a validated field plan for packing vectors of one kind into a
// word. The zero Layout is invalid; use NewLayout or FixedLayout.
type Layout struct {
	kind     Kind
	wordBits uint8
	n        uint8
	widths   [MaxLen]uint8
	offsets  [MaxLen]uint8
	total    uint8
}

// NewLayout validates widths for vectors of kind packed into a word of
// wordBits (32 or 64) bits. It returns a *ConfigError unless there are 2 to
// 4 widths, each within [0, kind.Bits()], summing to at most wordBits.
// Zero-width fields are allowed; they always unpack as zero.
func NewLayout(kind Kind, wordBits int, widths ...int) (Layout, error) {
	if wordBits != 32 && wordBits != 64 {
		return Layout{}, configErrorf("layout", "word width %d is not 32 or 64", wordBits)
	}
	if !kind.Valid() {
		return Layout{}, configErrorf("layout", "invalid kind %s", kind)
	}
	if err := checkLen("layout", len(widths)); err != nil {
		return Layout{}, err
	}
	l := Layout{kind: kind, wordBits: uint8(wordBits), n: uint8(len(widths))}
	total := 0
	for i, w := range widths {
		if w < 0 || w > kind.Bits() {
			return Layout{}, configErrorf("layout", "width %d of field %d outside [0,%d] for %s",
				w, i, kind.Bits(), kind)
		}
		l.widths[i] = uint8(w)
		l.offsets[i] = uint8(total)
		total += w
	}
	if total > wordBits {
		return Layout{}, configErrorf("layout", "total width %d exceeds %d-bit word", total, wordBits)
	}
	l.total = uint8(total)
	return l, nil
}

// FixedLayout returns the layout where every field is exactly kind.Bits()
// wide, with field i at offset i*kind.Bits().
func FixedLayout(kind Kind, wordBits, n int) (Layout, error) {
	if err := checkLen("layout", n); err != nil {
		return Layout{}, err
	}
	if !kind.Valid() {
		return Layout{}, configErrorf("layout", "invalid kind %s", kind)
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = kind.Bits()
	}
	return NewLayout(kind, wordBits, widths...)
}

// Kind returns the component kind the layout was built for.
func (l Layout) Kind() Kind { return l.kind }

// Len returns the number of fields.
func (l Layout) Len() int { return int(l.n) }

// WordBits returns the width of the target word.
func (l Layout) WordBits() int { return int(l.wordBits) }

// Total returns the number of bits used by all fields.
func (l Layout) Total() int { return int(l.total) }

// Widths returns a copy of the field widths.
func (l Layout) Widths() []int {
	out := make([]int, l.n)
	for i := range out {
		out[i] = int(l.widths[i])
	}
	return out
}

// Offsets returns the bit offset of every field.
func (l Layout) Offsets() []int {
	out := make([]int, l.n)
	for i := range out {
		out[i] = int(l.offsets[i])
	}
	return out
}

// Mask returns the in-word mask of field i, or 0 if i is out of range.
func (l Layout) Mask(i int) uint64 {
	if i < 0 || i >= int(l.n) {
		return 0
	}
	return lowMask(int(l.widths[i])) << l.offsets[i]
}

// String describes the layout, e.g. "uint8[8,8,8,8]/32".
func (l Layout) String() string {
	parts := make([]string, l.n)
	for i := range parts {
		parts[i] = fmt.Sprint(l.widths[i])
	}
	return fmt.Sprintf("%s[%s]/%d", l.kind, strings.Join(parts, ","), l.wordBits)
}

func (l Layout) check(op string, kind Kind, wordBits, n int) error {
	if l.n == 0 {
		return configErrorf(op, "uninitialized layout")
	}
	if l.kind != kind {
		return configErrorf(op, "layout is for %s, vector is %s", l.kind, kind)
	}
	if int(l.wordBits) != wordBits {
		return configErrorf(op, "layout is for a %d-bit word, got %d-bit", l.wordBits, wordBits)
	}
	if int(l.n) != n {
		return configErrorf(op, "layout has %d fields, vector has %d components", l.n, n)
	}
	return nil
}

// PackLayout packs v into a word of type W following l.
func PackLayout[W Word, T Lanes](l Layout, v Vec[T]) (W, error) {
	if err := l.check("pack", KindOf[T](), WordBits[W](), v.Len()); err != nil {
		return 0, err
	}
	var acc uint64
	for i := range int(l.n) {
		acc |= (toBits(v.lanes[i]) & lowMask(int(l.widths[i]))) << l.offsets[i]
	}
	return W(acc), nil
}

// UnpackLayout extracts a vector from word following l. Each field is
// zero-extended into T; no sign extension is applied, so a signed component
// only round-trips its sign when its field is the full kind width.
func UnpackLayout[T Lanes, W Word](l Layout, word W) (Vec[T], error) {
	if err := l.check("unpack", KindOf[T](), WordBits[W](), l.Len()); err != nil {
		return Vec[T]{}, err
	}
	v := Vec[T]{n: l.n}
	for i := range int(l.n) {
		field := (uint64(word) >> l.offsets[i]) & lowMask(int(l.widths[i]))
		v.lanes[i] = fromBits[T](field)
	}
	return v, nil
}

// Pack packs v into a word of type W using one field width per component.
//
// It returns a *ConfigError when len(widths) differs from v.Len(), when a
// width is outside [0, bits of T], or when the widths sum to more than the
// word size. Components wider than their field are silently truncated.
func Pack[W Word, T Lanes](widths []int, v Vec[T]) (W, error) {
	if len(widths) != v.Len() {
		return 0, configErrorf("pack", "%d widths for a %d-component vector", len(widths), v.Len())
	}
	l, err := NewLayout(KindOf[T](), WordBits[W](), widths...)
	if err != nil {
		return 0, err
	}
	return PackLayout[W](l, v)
}

// Unpack extracts a len(widths)-component vector from word. It is the
// inverse of Pack for components that fit their fields.
func Unpack[T Lanes, W Word](widths []int, word W) (Vec[T], error) {
	l, err := NewLayout(KindOf[T](), WordBits[W](), widths...)
	if err != nil {
		return Vec[T]{}, err
	}
	return UnpackLayout[T](l, word)
}

// PackFixed packs v with every field as wide as T, component i at bit offset
// i*bits(T). It fails when the components do not fit in W. The result is a
// pure bit reinterpretation and is always exactly invertible by UnpackFixed.
func PackFixed[W Word, T Lanes](v Vec[T]) (W, error) {
	l, err := FixedLayout(KindOf[T](), WordBits[W](), v.Len())
	if err != nil {
		return 0, err
	}
	return PackLayout[W](l, v)
}

// UnpackFixed extracts an n-component vector packed by PackFixed.
func UnpackFixed[T Lanes, W Word](n int, word W) (Vec[T], error) {
	l, err := FixedLayout(KindOf[T](), WordBits[W](), n)
	if err != nil {
		return Vec[T]{}, err
	}
	return UnpackLayout[T](l, word)
}
