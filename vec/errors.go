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
	"fmt"
)

// Only two things can go wrong in this package: a caller hands the codec a
// layout it cannot honor, or asks for a component that does not exist.
// Numeric conversions and transforms are total and never report errors.
var (
	// ErrConfiguration matches any *ConfigError.
	ErrConfiguration = errors.New("vec: configuration error")

	// ErrIndexOutOfRange matches any *IndexError.
	ErrIndexOutOfRange = errors.New("vec: index out of range")
)

// ConfigError reports a violated precondition of a packing, loading or
// swizzling call.
type ConfigError struct {
	Op     string // operation, e.g. "pack" or "unpack"
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Op == "" {
		return "vec: configuration error: " + e.Detail
	}
	return "vec: " + e.Op + ": " + e.Detail
}

// Is makes errors.Is(err, ErrConfiguration) succeed.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(op, format string, args ...any) error {
	return &ConfigError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// IndexError reports a component index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vec: index %d out of range [0,%d)", e.Index, e.Len)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) succeed.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
