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

package wire

import (
	"encoding/binary"

	"github.com/ajroetker/go-fixvec/vec"
)

// WriteVec writes the components of v in index order, one fixed-size
// primitive per component.
func WriteVec[T vec.Lanes](w *Writer, v vec.Vec[T]) error {
	for i := range v.Len() {
		x, _ := v.At(i)
		if err := writeLane(w, x); err != nil {
			return err
		}
	}
	return nil
}

func writeLane[T vec.Lanes](w *Writer, x T) error {
	switch val := any(x).(type) {
	case int8:
		return w.WriteInt8(val)
	case int16:
		return w.WriteInt16(val)
	case int32:
		return w.WriteInt32(val)
	case int64:
		return w.WriteInt64(val)
	case uint8:
		return w.WriteUint8(val)
	case uint16:
		return w.WriteUint16(val)
	case uint32:
		return w.WriteUint32(val)
	case uint64:
		return w.WriteUint64(val)
	case vec.Float16:
		return w.WriteHalf(val)
	case float32:
		return w.WriteFloat32(val)
	case float64:
		return w.WriteFloat64(val)
	}
	return nil
}

// ReadVec reads an n-component vector written by WriteVec. It returns a
// vec.ErrConfiguration error for an unsupported n before reading anything.
func ReadVec[T vec.Lanes](r *Reader, n int) (vec.Vec[T], error) {
	if _, err := vec.Zero[T](n); err != nil {
		return vec.Vec[T]{}, err
	}
	var lanes [vec.MaxLen]T
	for i := range n {
		x, err := readLane[T](r)
		if err != nil {
			return vec.Vec[T]{}, err
		}
		lanes[i] = x
	}
	return vec.Load(lanes[:n])
}

func readLane[T vec.Lanes](r *Reader) (T, error) {
	var out T
	var err error
	switch p := any(&out).(type) {
	case *int8:
		*p, err = r.ReadInt8()
	case *int16:
		*p, err = r.ReadInt16()
	case *int32:
		*p, err = r.ReadInt32()
	case *int64:
		*p, err = r.ReadInt64()
	case *uint8:
		*p, err = r.ReadUint8()
	case *uint16:
		*p, err = r.ReadUint16()
	case *uint32:
		*p, err = r.ReadUint32()
	case *uint64:
		*p, err = r.ReadUint64()
	case *vec.Float16:
		*p, err = r.ReadHalf()
	case *float32:
		*p, err = r.ReadFloat32()
	case *float64:
		*p, err = r.ReadFloat64()
	}
	return out, err
}

// AppendVec appends the stream encoding of v to dst and returns the
// extended slice.
func AppendVec[T vec.Lanes](dst []byte, v vec.Vec[T]) []byte {
	size := vec.KindOf[T]().Bits() / 8
	for i := range v.Len() {
		x, _ := v.At(i)
		bits := vec.RawBits(x)
		switch size {
		case 1:
			dst = append(dst, uint8(bits))
		case 2:
			dst = binary.LittleEndian.AppendUint16(dst, uint16(bits))
		case 4:
			dst = binary.LittleEndian.AppendUint32(dst, uint32(bits))
		default:
			dst = binary.LittleEndian.AppendUint64(dst, bits)
		}
	}
	return dst
}

// WordBytes returns the stream bytes of a packed word.
func WordBytes[W vec.Word](word W) []byte {
	if vec.WordBits[W]() == 32 {
		return binary.LittleEndian.AppendUint32(nil, uint32(word))
	}
	return binary.LittleEndian.AppendUint64(nil, uint64(word))
}

// WriteWord writes a packed word in stream byte order.
func WriteWord[W vec.Word](w *Writer, word W) error {
	if vec.WordBits[W]() == 32 {
		return w.WriteUint32(uint32(word))
	}
	return w.WriteUint64(uint64(word))
}

// ReadWord reads a packed word in stream byte order.
func ReadWord[W vec.Word](r *Reader) (W, error) {
	if vec.WordBits[W]() == 32 {
		v, err := r.ReadUint32()
		return W(v), err
	}
	v, err := r.ReadUint64()
	return W(v), err
}
