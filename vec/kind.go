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

// Kind identifies one of the scalar types a vector component can have.
type Kind uint8

const (
	Int8 Kind = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Half
	Float32
	Float64

	// NumKinds is the number of scalar kinds.
	NumKinds = int(Float64) + 1
)

// KindInfo describes a scalar kind.
type KindInfo struct {
	Name   string
	Bits   int  // storage width: 8, 16, 32 or 64
	Signed bool // floats are signed
	Float  bool

	// Digits is the number of binary digits the kind represents exactly:
	// Bits-1 for signed integers, Bits for unsigned integers, and the
	// significand width (including the implicit bit) for floats.
	Digits int
}

var kindTable = [NumKinds]KindInfo{
	Int8:    {Name: "int8", Bits: 8, Signed: true, Digits: 7},
	Int16:   {Name: "int16", Bits: 16, Signed: true, Digits: 15},
	Int32:   {Name: "int32", Bits: 32, Signed: true, Digits: 31},
	Int64:   {Name: "int64", Bits: 64, Signed: true, Digits: 63},
	Uint8:   {Name: "uint8", Bits: 8, Digits: 8},
	Uint16:  {Name: "uint16", Bits: 16, Digits: 16},
	Uint32:  {Name: "uint32", Bits: 32, Digits: 32},
	Uint64:  {Name: "uint64", Bits: 64, Digits: 64},
	Half:    {Name: "half", Bits: 16, Signed: true, Float: true, Digits: 11},
	Float32: {Name: "float32", Bits: 32, Signed: true, Float: true, Digits: 24},
	Float64: {Name: "float64", Bits: 64, Signed: true, Float: true, Digits: 53},
}

var kindAliases = map[string]Kind{
	"i8": Int8, "i16": Int16, "i32": Int32, "i64": Int64,
	"u8": Uint8, "u16": Uint16, "u32": Uint32, "u64": Uint64,
	"byte": Uint8, "f16": Half, "float16": Half,
	"f32": Float32, "f64": Float64,
}

// Info returns the registry entry for k. It panics if k is not a valid kind.
func (k Kind) Info() KindInfo {
	return kindTable[k]
}

// Valid reports whether k names one of the registered kinds.
func (k Kind) Valid() bool {
	return int(k) < NumKinds
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindTable[k].Name
}

// Bits returns the storage width of the kind in bits.
func (k Kind) Bits() int { return kindTable[k].Bits }

// Signed reports whether the kind can hold negative values.
func (k Kind) Signed() bool { return kindTable[k].Signed }

// IsFloat reports whether the kind is a floating-point format.
func (k Kind) IsFloat() bool { return kindTable[k].Float }

// Kinds returns all scalar kinds in registry order.
func Kinds() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind looks up a kind by canonical name or short alias ("u8", "f32").
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range kindTable {
		if info.Name == name {
			return Kind(i), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, configErrorf("kind", "unknown scalar kind %q", name)
}

// KindOf returns the scalar kind of the lane type T.
func KindOf[T Lanes]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case Float16:
		return Half
	case float32:
		return Float32
	default:
		return Float64
	}
}
