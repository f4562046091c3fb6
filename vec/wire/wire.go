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

// Package wire reads and writes vectors as little-endian byte streams.
//
// Format for a vector of N components of kind K:
//
//	[component 0][component 1]...[component N-1]
//
// Each component is written in K's native fixed-size representation
// (two's complement or IEEE 754), least significant byte first. There is no
// length prefix, padding or alignment between components, so the bytes of a
// vector equal the little-endian bytes of its vec.PackFixed word whenever
// the components exactly fill the word.
package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ajroetker/go-fixvec/vec"
	"golang.org/x/sys/cpu"
)

// NativeMatchesStream reports whether the host stores multi-byte words in
// the same (little-endian) order as the stream. When true, the in-memory
// bytes of a packed word can be copied to the stream as-is.
func NativeMatchesStream() bool {
	return !cpu.IsBigEndian
}

// Writer writes fixed-size scalars to an underlying io.Writer.
type Writer struct {
	w   io.Writer
	buf [8]byte
	n   int64
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 {
	return w.n
}

func (w *Writer) write(size int) error {
	n, err := w.w.Write(w.buf[:size])
	w.n += int64(n)
	return err
}

// WriteUint8 writes one byte.
func (w *Writer) WriteUint8(v uint8) error {
	w.buf[0] = v
	return w.write(1)
}

// WriteUint16 writes v as 2 little-endian bytes.
func (w *Writer) WriteUint16(v uint16) error {
	binary.LittleEndian.PutUint16(w.buf[:], v)
	return w.write(2)
}

// WriteUint32 writes v as 4 little-endian bytes.
func (w *Writer) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(w.buf[:], v)
	return w.write(4)
}

// WriteUint64 writes v as 8 little-endian bytes.
func (w *Writer) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(w.buf[:], v)
	return w.write(8)
}

// WriteInt8 writes v as one two's-complement byte.
func (w *Writer) WriteInt8(v int8) error { return w.WriteUint8(uint8(v)) }

// WriteInt16 writes v as 2 little-endian two's-complement bytes.
func (w *Writer) WriteInt16(v int16) error { return w.WriteUint16(uint16(v)) }

// WriteInt32 writes v as 4 little-endian two's-complement bytes.
func (w *Writer) WriteInt32(v int32) error { return w.WriteUint32(uint32(v)) }

// WriteInt64 writes v as 8 little-endian two's-complement bytes.
func (w *Writer) WriteInt64(v int64) error { return w.WriteUint64(uint64(v)) }

// WriteHalf writes the binary16 bits of v.
func (w *Writer) WriteHalf(v vec.Float16) error { return w.WriteUint16(v.Bits()) }

// WriteFloat32 writes the binary32 bits of v.
func (w *Writer) WriteFloat32(v float32) error { return w.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 writes the binary64 bits of v.
func (w *Writer) WriteFloat64(v float64) error { return w.WriteUint64(math.Float64bits(v)) }

// Reader reads fixed-size scalars from an underlying io.Reader.
type Reader struct {
	r   io.Reader
	buf [8]byte
}

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// read fills the first size bytes of the buffer. A short read is reported
// as io.ErrUnexpectedEOF; a clean end of stream as io.EOF.
func (r *Reader) read(size int) ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:size]); err != nil {
		return nil, err
	}
	return r.buf[:size], nil
}

// ReadUint8 reads one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads 2 little-endian bytes.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads 4 little-endian bytes.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads 8 little-endian bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt8 reads one two's-complement byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

// ReadInt16 reads 2 little-endian two's-complement bytes.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadInt32 reads 4 little-endian two's-complement bytes.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads 8 little-endian two's-complement bytes.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadHalf reads binary16 bits.
func (r *Reader) ReadHalf() (vec.Float16, error) {
	v, err := r.ReadUint16()
	return vec.Float16FromBits(v), err
}

// ReadFloat32 reads binary32 bits.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads binary64 bits.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}
