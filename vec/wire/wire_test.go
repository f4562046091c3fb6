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
	"bytes"
	"errors"
	"io"
	"runtime"
	"testing"

	"github.com/ajroetker/go-fixvec/vec"
	"github.com/google/go-cmp/cmp"
)

func TestNativeMatchesStream(t *testing.T) {
	switch runtime.GOARCH {
	case "amd64", "arm64", "386", "riscv64", "loong64", "wasm":
		if !NativeMatchesStream() {
			t.Errorf("%s is little-endian", runtime.GOARCH)
		}
	case "s390x", "ppc64", "mips", "mips64":
		if NativeMatchesStream() {
			t.Errorf("%s is big-endian", runtime.GOARCH)
		}
	}
}

func TestWriteVecBytes(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *Writer) error
		want  []byte
	}{
		{
			name:  "uint8x4",
			write: func(w *Writer) error { return WriteVec(w, vec.New4[uint8](10, 20, 30, 40)) },
			want:  []byte{0x0A, 0x14, 0x1E, 0x28},
		},
		{
			name:  "int16x2",
			write: func(w *Writer) error { return WriteVec(w, vec.New2[int16](-2, 0x0102)) },
			want:  []byte{0xFE, 0xFF, 0x02, 0x01},
		},
		{
			name:  "float32x2",
			write: func(w *Writer) error { return WriteVec(w, vec.New2[float32](1, -2)) },
			want:  []byte{0x00, 0x00, 0x80, 0x3F, 0x00, 0x00, 0x00, 0xC0},
		},
		{
			name:  "halfx3",
			write: func(w *Writer) error { return WriteVec(w, vec.New3(vec.NewFloat16(1), vec.NewFloat16(-1), vec.Float16Inf)) },
			want:  []byte{0x00, 0x3C, 0x00, 0xBC, 0x00, 0x7C},
		},
		{
			name:  "uint64x2",
			write: func(w *Writer) error { return WriteVec(w, vec.New2[uint64](1, 0x0807060504030201)) },
			want:  []byte{1, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			if err := tt.write(w); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, buf.Bytes()); diff != "" {
				t.Errorf("bytes mismatch (-want +got):\n%s", diff)
			}
			if w.Written() != int64(len(tt.want)) {
				t.Errorf("Written = %d, want %d", w.Written(), len(tt.want))
			}
		})
	}
}

// checkFixedWord verifies that the stream bytes of a vector equal the stream
// bytes of its fixed-width packed word.
func checkFixedWord[W vec.Word, T vec.Lanes](t *testing.T, v vec.Vec[T]) {
	t.Helper()
	word, err := vec.PackFixed[W](v)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteVec(NewWriter(&buf), v); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(WordBytes(word), buf.Bytes()); diff != "" {
		t.Errorf("%v: word bytes differ from stream (-word +stream):\n%s", v, diff)
	}
	if diff := cmp.Diff(AppendVec(nil, v), buf.Bytes()); diff != "" {
		t.Errorf("%v: AppendVec differs from WriteVec (-append +write):\n%s", v, diff)
	}

	var wbuf bytes.Buffer
	if err := WriteWord(NewWriter(&wbuf), word); err != nil {
		t.Fatal(err)
	}
	back, err := ReadVec[T](NewReader(&wbuf), v.Len())
	if err != nil {
		t.Fatal(err)
	}
	if back != v {
		t.Errorf("ReadVec after WriteWord = %v, want %v", back, v)
	}
}

func TestFixedWordMatchesStream(t *testing.T) {
	checkFixedWord[uint32](t, vec.New4[uint8](10, 20, 30, 40))
	checkFixedWord[uint32](t, vec.New4[int8](-1, 2, -3, 127))
	checkFixedWord[uint64](t, vec.New4[int16](-1, 2, -300, 32767))
	checkFixedWord[uint64](t, vec.New4[uint16](0xFFFF, 1, 0x8000, 0x1234))
	checkFixedWord[uint64](t, vec.New2[float32](1.5, -0.25))
	checkFixedWord[uint64](t, vec.New2[uint32](0xDEADBEEF, 7))
	checkFixedWord[uint32](t, vec.New2(vec.NewFloat16(0.5), vec.NewFloat16(-65504)))
	checkFixedWord[uint32](t, vec.New2[int16](-32768, 1))
}

func TestReadVecRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	a := vec.New3[int32](-1, 0, 1<<30)
	b := vec.New2[float64](3.25, -1e300)
	c := vec.New4(vec.NewFloat16(1), vec.Float16NaN, vec.NewFloat16(-0.5), vec.Float16NegInf)
	if err := WriteVec(w, a); err != nil {
		t.Fatal(err)
	}
	if err := WriteVec(w, b); err != nil {
		t.Fatal(err)
	}
	if err := WriteVec(w, c); err != nil {
		t.Fatal(err)
	}

	r := NewReader(&buf)
	gotA, err := ReadVec[int32](r, 3)
	if err != nil || gotA != a {
		t.Errorf("ReadVec int32 = %v, %v", gotA, err)
	}
	gotB, err := ReadVec[float64](r, 2)
	if err != nil || gotB != b {
		t.Errorf("ReadVec float64 = %v, %v", gotB, err)
	}
	// Half values compare by bit pattern, so NaN survives equality.
	gotC, err := ReadVec[vec.Float16](r, 4)
	if err != nil || gotC != c {
		t.Errorf("ReadVec half = %v, %v", gotC, err)
	}
	if _, err := ReadVec[uint8](r, 2); !errors.Is(err, io.EOF) {
		t.Errorf("read past end error = %v, want io.EOF", err)
	}
}

func TestReadVecErrors(t *testing.T) {
	short := bytes.NewReader([]byte{1, 0, 2})
	if _, err := ReadVec[int16](NewReader(short), 2); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("short read error = %v, want io.ErrUnexpectedEOF", err)
	}

	data := bytes.NewReader(make([]byte, 64))
	r := NewReader(data)
	for _, n := range []int{0, 1, 5} {
		if _, err := ReadVec[uint8](r, n); !errors.Is(err, vec.ErrConfiguration) {
			t.Errorf("ReadVec(n=%d) error = %v, want ErrConfiguration", n, err)
		}
	}
	if data.Len() != 64 {
		t.Errorf("invalid arity consumed %d bytes", 64-data.Len())
	}
}

func TestReadWord(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x0A, 0x14, 0x1E, 0x28, 1, 2, 3, 4, 5, 6, 7, 8}))
	w32, err := ReadWord[uint32](r)
	if err != nil || w32 != 0x281E140A {
		t.Errorf("ReadWord[uint32] = %#x, %v", w32, err)
	}
	w64, err := ReadWord[uint64](r)
	if err != nil || w64 != 0x0807060504030201 {
		t.Errorf("ReadWord[uint64] = %#x, %v", w64, err)
	}
}
