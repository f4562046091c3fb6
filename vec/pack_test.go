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
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestPackFixedExample(t *testing.T) {
	v := New4[uint8](10, 20, 30, 40)
	got, err := PackFixed[uint32](v)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x281E140A {
		t.Errorf("PackFixed(%v) = 0x%08X, want 0x281E140A", v, got)
	}
	back, err := UnpackFixed[uint8](4, got)
	if err != nil {
		t.Fatal(err)
	}
	if back != v {
		t.Errorf("UnpackFixed = %v, want %v", back, v)
	}
}

func TestPack(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		tests := []struct {
			name   string
			widths []int
			input  Vec[uint8]
			want   uint32
			back   Vec[uint8]
		}{
			{
				name:   "explicit 8-bit fields",
				widths: []int{8, 8, 8, 8},
				input:  New4[uint8](10, 20, 30, 40),
				want:   0x281E140A,
				back:   New4[uint8](10, 20, 30, 40),
			},
			{
				name:   "rgb565",
				widths: []int{5, 6, 5},
				input:  New3[uint8](31, 63, 31),
				want:   0xFFFF,
				back:   New3[uint8](31, 63, 31),
			},
			{
				name:   "zero width field",
				widths: []int{4, 0, 4},
				input:  New3[uint8](0xA, 0xF, 0x5),
				want:   0x5A,
				back:   New3[uint8](0xA, 0, 0x5),
			},
			{
				name:   "all zero widths",
				widths: []int{0, 0},
				input:  New2[uint8](0xFF, 0xFF),
				want:   0,
				back:   New2[uint8](0, 0),
			},
			{
				name:   "value exceeding field is truncated",
				widths: []int{4, 4},
				input:  New2[uint8](0x1F, 0x2),
				want:   0x2F,
				back:   New2[uint8](0xF, 0x2),
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := Pack[uint32](tt.widths, tt.input)
				if err != nil {
					t.Fatal(err)
				}
				if got != tt.want {
					t.Errorf("Pack = 0x%X, want 0x%X", got, tt.want)
				}
				back, err := Unpack[uint8](tt.widths, got)
				if err != nil {
					t.Fatal(err)
				}
				if back != tt.back {
					t.Errorf("Unpack = %v, want %v", back, tt.back)
				}
			})
		}
	})

	t.Run("signed partial width is not sign-extended", func(t *testing.T) {
		got, err := Pack[uint32]([]int{4, 4}, New2[int8](-1, 1))
		if err != nil {
			t.Fatal(err)
		}
		if got != 0x1F {
			t.Errorf("Pack = 0x%X, want 0x1F", got)
		}
		back, err := Unpack[int8]([]int{4, 4}, got)
		if err != nil {
			t.Fatal(err)
		}
		if want := New2[int8](15, 1); back != want {
			t.Errorf("Unpack = %v, want %v", back, want)
		}
	})

	t.Run("signed full width keeps sign", func(t *testing.T) {
		v := New2[int16](-1, -2)
		got, err := PackFixed[uint32](v)
		if err != nil {
			t.Fatal(err)
		}
		if got != 0xFFFEFFFF {
			t.Errorf("PackFixed = 0x%08X, want 0xFFFEFFFF", got)
		}
		back, err := UnpackFixed[int16](2, got)
		if err != nil || back != v {
			t.Errorf("UnpackFixed = %v, %v; want %v", back, err, v)
		}
	})

	t.Run("float bits", func(t *testing.T) {
		v := New2[float32](1, -2)
		got, err := PackFixed[uint64](v)
		if err != nil {
			t.Fatal(err)
		}
		if got != 0xC00000003F800000 {
			t.Errorf("PackFixed = 0x%016X, want 0xC00000003F800000", got)
		}
	})

	t.Run("half bits", func(t *testing.T) {
		v := New4(Float16One, Float16NegOne, Float16Inf, Float16NaN)
		got, err := PackFixed[uint64](v)
		if err != nil {
			t.Fatal(err)
		}
		if got != 0x7E007C00BC003C00 {
			t.Errorf("PackFixed = 0x%016X, want 0x7E007C00BC003C00", got)
		}
		back, err := UnpackFixed[Float16](4, got)
		if err != nil || back != v {
			t.Errorf("UnpackFixed = %v, %v; want %v", back, err, v)
		}
	})

	t.Run("full 64-bit field", func(t *testing.T) {
		v := New2[uint64](math.MaxUint64, 5)
		got, err := Pack[uint64]([]int{64, 0}, v)
		if err != nil {
			t.Fatal(err)
		}
		if got != math.MaxUint64 {
			t.Errorf("Pack = 0x%X, want all ones", got)
		}
		back, err := Unpack[uint64]([]int{64, 0}, got)
		if err != nil {
			t.Fatal(err)
		}
		if want := New2[uint64](math.MaxUint64, 0); back != want {
			t.Errorf("Unpack = %v, want %v", back, want)
		}
	})
}

func TestPackRejects(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"sum exceeds word", func() error {
			_, err := Pack[uint32]([]int{16, 16, 8}, New3[uint16](1, 2, 3))
			return err
		}()},
		{"width exceeds kind", func() error {
			_, err := Pack[uint64]([]int{9, 8}, New2[uint8](1, 2))
			return err
		}()},
		{"negative width", func() error {
			_, err := Pack[uint32]([]int{-1, 8}, New2[uint8](1, 2))
			return err
		}()},
		{"width count mismatch", func() error {
			_, err := Pack[uint32]([]int{8, 8, 8}, New2[uint8](1, 2))
			return err
		}()},
		{"fixed does not fit", func() error {
			_, err := PackFixed[uint32](New2[int32](1, 2))
			return err
		}()},
		{"fixed 4x16 into 32", func() error {
			_, err := PackFixed[uint32](New4[uint16](1, 2, 3, 4))
			return err
		}()},
		{"unpack sum exceeds word", func() error {
			_, err := Unpack[uint32]([]int{32, 32, 1}, uint64(0))
			return err
		}()},
		{"unpack single field", func() error {
			_, err := Unpack[uint8]([]int{8}, uint32(0))
			return err
		}()},
		{"unpack fixed arity", func() error {
			_, err := UnpackFixed[uint8](5, uint32(0))
			return err
		}()},
		{"unpack fixed does not fit", func() error {
			_, err := UnpackFixed[float64](2, uint64(0))
			return err
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrConfiguration) {
				t.Errorf("got %v, want ErrConfiguration", tt.err)
			}
			var ce *ConfigError
			if !errors.As(tt.err, &ce) {
				t.Errorf("got %T, want *ConfigError", tt.err)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	l, err := NewLayout(Uint8, 32, 5, 6, 5)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 3 || l.Total() != 16 || l.WordBits() != 32 || l.Kind() != Uint8 {
		t.Errorf("unexpected layout %v", l)
	}
	if got := l.Offsets(); got[0] != 0 || got[1] != 5 || got[2] != 11 {
		t.Errorf("Offsets = %v", got)
	}
	if got := l.Mask(1); got != 0x7E0 {
		t.Errorf("Mask(1) = 0x%X, want 0x7E0", got)
	}
	if got := l.Mask(3); got != 0 {
		t.Errorf("Mask(3) = 0x%X, want 0", got)
	}
	if got := l.String(); got != "uint8[5,6,5]/32" {
		t.Errorf("String = %q", got)
	}

	t.Run("mismatched use", func(t *testing.T) {
		if _, err := PackLayout[uint64](l, New3[uint8](1, 2, 3)); !errors.Is(err, ErrConfiguration) {
			t.Errorf("word mismatch: %v", err)
		}
		if _, err := PackLayout[uint32](l, New3[int8](1, 2, 3)); !errors.Is(err, ErrConfiguration) {
			t.Errorf("kind mismatch: %v", err)
		}
		if _, err := PackLayout[uint32](l, New2[uint8](1, 2)); !errors.Is(err, ErrConfiguration) {
			t.Errorf("arity mismatch: %v", err)
		}
		if _, err := UnpackLayout[uint8](Layout{}, uint32(0)); !errors.Is(err, ErrConfiguration) {
			t.Errorf("zero layout: %v", err)
		}
	})

	t.Run("invalid word", func(t *testing.T) {
		if _, err := NewLayout(Uint8, 16, 8, 8); !errors.Is(err, ErrConfiguration) {
			t.Errorf("16-bit word: %v", err)
		}
	})
}

// roundTripRandom packs random vectors whose components fit their fields and
// checks that unpacking gives them back.
func roundTripRandom[T Integers, W Word](t *testing.T, rng *rand.Rand, trials int) {
	t.Helper()
	bits := KindOf[T]().Bits()
	for range trials {
		n := MinLen + rng.IntN(MaxLen-MinLen+1)
		widths := make([]int, n)
		lanes := make([]T, n)
		remaining := WordBits[W]()
		for i := range n {
			w := rng.IntN(min(bits, remaining) + 1)
			remaining -= w
			widths[i] = w
			lanes[i] = fromBits[T](rng.Uint64() & lowMask(w))
		}
		v, err := Load(lanes)
		if err != nil {
			t.Fatal(err)
		}
		word, err := Pack[W](widths, v)
		if err != nil {
			t.Fatalf("Pack(%v, %v): %v", widths, v, err)
		}
		back, err := Unpack[T](widths, word)
		if err != nil {
			t.Fatalf("Unpack(%v, 0x%X): %v", widths, word, err)
		}
		if back != v {
			t.Fatalf("round trip %v with widths %v: got %v", v, widths, back)
		}
	}
}

func TestPackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	t.Run("uint8/32", func(t *testing.T) { roundTripRandom[uint8, uint32](t, rng, 2000) })
	t.Run("int8/32", func(t *testing.T) { roundTripRandom[int8, uint32](t, rng, 2000) })
	t.Run("uint16/64", func(t *testing.T) { roundTripRandom[uint16, uint64](t, rng, 2000) })
	t.Run("int16/32", func(t *testing.T) { roundTripRandom[int16, uint32](t, rng, 2000) })
	t.Run("int32/64", func(t *testing.T) { roundTripRandom[int32, uint64](t, rng, 2000) })
	t.Run("uint64/64", func(t *testing.T) { roundTripRandom[uint64, uint64](t, rng, 2000) })
}

// fixedBijection checks pack(unpack(x)) == x for random words when n
// components of T exactly fill W.
func fixedBijection[T Lanes, W Word](t *testing.T, rng *rand.Rand, n int) {
	t.Helper()
	for range 2000 {
		x := W(rng.Uint64())
		v, err := UnpackFixed[T](n, x)
		if err != nil {
			t.Fatal(err)
		}
		y, err := PackFixed[W](v)
		if err != nil {
			t.Fatal(err)
		}
		if y != x {
			t.Fatalf("PackFixed(UnpackFixed(0x%X)) = 0x%X", x, y)
		}
	}
}

func TestPackFixedBijection(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	t.Run("4xuint8/32", func(t *testing.T) { fixedBijection[uint8, uint32](t, rng, 4) })
	t.Run("2xint16/32", func(t *testing.T) { fixedBijection[int16, uint32](t, rng, 2) })
	t.Run("2xhalf/32", func(t *testing.T) { fixedBijection[Float16, uint32](t, rng, 2) })
	t.Run("4xint16/64", func(t *testing.T) { fixedBijection[int16, uint64](t, rng, 4) })
	t.Run("4xhalf/64", func(t *testing.T) { fixedBijection[Float16, uint64](t, rng, 4) })
	t.Run("2xint32/64", func(t *testing.T) { fixedBijection[int32, uint64](t, rng, 2) })
	t.Run("2xfloat32/64", func(t *testing.T) { fixedBijection[float32, uint64](t, rng, 2) })
}

func TestPackFixedPartialWord(t *testing.T) {
	// Three bytes leave the top byte of a 32-bit word unused.
	v := New3[int8](-1, 2, -3)
	word, err := PackFixed[uint32](v)
	if err != nil {
		t.Fatal(err)
	}
	if word != 0x00FD02FF {
		t.Errorf("PackFixed = 0x%08X, want 0x00FD02FF", word)
	}
	back, err := UnpackFixed[int8](3, word|0xFF000000)
	if err != nil || back != v {
		t.Errorf("UnpackFixed ignores unused bits: got %v, %v", back, err)
	}
}

func BenchmarkPack(b *testing.B) {
	v := New4[uint8](10, 20, 30, 40)
	widths := []int{5, 6, 5, 8}
	var sink uint32
	for b.Loop() {
		sink, _ = Pack[uint32](widths, v)
	}
	_ = sink
}

func BenchmarkPackLayout(b *testing.B) {
	v := New4[uint8](10, 20, 30, 40)
	l, err := NewLayout(Uint8, 32, 5, 6, 5, 8)
	if err != nil {
		b.Fatal(err)
	}
	var sink uint32
	for b.Loop() {
		sink, _ = PackLayout[uint32](l, v)
	}
	_ = sink
}

func BenchmarkUnpack(b *testing.B) {
	widths := []int{5, 6, 5, 8}
	var sink Vec[uint8]
	for b.Loop() {
		sink, _ = Unpack[uint8](widths, uint32(0x281E140A))
	}
	_ = sink
}
