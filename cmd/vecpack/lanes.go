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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-fixvec/vec"
)

// kindHandler runs the generic vec operations for one scalar kind chosen
// at run time.
type kindHandler interface {
	// convert parses args as a vector of this kind and converts it to dst.
	convert(dst vec.Kind, args []string) (string, error)
	// pack parses args and packs them with l, returning the word widened
	// to 64 bits.
	pack(l vec.Layout, args []string) (uint64, error)
	// unpack decodes word with l.
	unpack(l vec.Layout, word uint64) (string, error)
}

type lanes[T vec.Lanes] struct{}

var handlers = [vec.NumKinds]kindHandler{
	vec.Int8:    lanes[int8]{},
	vec.Int16:   lanes[int16]{},
	vec.Int32:   lanes[int32]{},
	vec.Int64:   lanes[int64]{},
	vec.Uint8:   lanes[uint8]{},
	vec.Uint16:  lanes[uint16]{},
	vec.Uint32:  lanes[uint32]{},
	vec.Uint64:  lanes[uint64]{},
	vec.Half:    lanes[vec.Float16]{},
	vec.Float32: lanes[float32]{},
	vec.Float64: lanes[float64]{},
}

func handlerFor(k vec.Kind) (kindHandler, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %v", vec.ErrConfiguration, k)
	}
	return handlers[k], nil
}

func (lanes[T]) convert(dst vec.Kind, args []string) (string, error) {
	v, err := parseVec[T](args)
	if err != nil {
		return "", err
	}
	return convertTo(dst, v)
}

func (lanes[T]) pack(l vec.Layout, args []string) (uint64, error) {
	v, err := parseVec[T](args)
	if err != nil {
		return 0, err
	}
	if l.WordBits() == 32 {
		w, err := vec.PackLayout[uint32](l, v)
		return uint64(w), err
	}
	return vec.PackLayout[uint64](l, v)
}

func (lanes[T]) unpack(l vec.Layout, word uint64) (string, error) {
	var (
		v   vec.Vec[T]
		err error
	)
	if l.WordBits() == 32 {
		v, err = vec.UnpackLayout[T](l, uint32(word))
	} else {
		v, err = vec.UnpackLayout[T](l, word)
	}
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func convertTo[S vec.Lanes](dst vec.Kind, v vec.Vec[S]) (string, error) {
	switch dst {
	case vec.Int8:
		return vec.Convert[int8](v).String(), nil
	case vec.Int16:
		return vec.Convert[int16](v).String(), nil
	case vec.Int32:
		return vec.Convert[int32](v).String(), nil
	case vec.Int64:
		return vec.Convert[int64](v).String(), nil
	case vec.Uint8:
		return vec.Convert[uint8](v).String(), nil
	case vec.Uint16:
		return vec.Convert[uint16](v).String(), nil
	case vec.Uint32:
		return vec.Convert[uint32](v).String(), nil
	case vec.Uint64:
		return vec.Convert[uint64](v).String(), nil
	case vec.Half:
		return vec.Convert[vec.Float16](v).String(), nil
	case vec.Float32:
		return vec.Convert[float32](v).String(), nil
	case vec.Float64:
		return vec.Convert[float64](v).String(), nil
	}
	return "", fmt.Errorf("%w: unknown kind %v", vec.ErrConfiguration, dst)
}

func parseVec[T vec.Lanes](args []string) (vec.Vec[T], error) {
	if len(args) < vec.MinLen || len(args) > vec.MaxLen {
		return vec.Vec[T]{}, fmt.Errorf("%w: need %d to %d components, got %d",
			vec.ErrConfiguration, vec.MinLen, vec.MaxLen, len(args))
	}
	out := make([]T, len(args))
	for i, s := range args {
		x, err := parseLane[T](s)
		if err != nil {
			return vec.Vec[T]{}, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = x
	}
	return vec.Load(out)
}

// parseLane parses one component. Integers accept any strconv base prefix
// and must fit the kind; floats round to nearest.
func parseLane[T vec.Lanes](s string) (T, error) {
	k := vec.KindOf[T]()
	s = strings.TrimSpace(s)
	switch {
	case k.IsFloat():
		bits := 64
		if k == vec.Float32 {
			bits = 32
		}
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return 0, err
		}
		return vec.ConvertScalar[T](f), nil
	case k.Signed():
		i, err := strconv.ParseInt(s, 0, k.Bits())
		if err != nil {
			return 0, err
		}
		return vec.ConvertScalar[T](i), nil
	default:
		u, err := strconv.ParseUint(s, 0, k.Bits())
		if err != nil {
			return 0, err
		}
		return vec.ConvertScalar[T](u), nil
	}
}
