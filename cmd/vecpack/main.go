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

// Command vecpack inspects scalar kinds, conversions and packed words of
// fixed-arity vectors.
//
// Usage:
//
//	vecpack kinds
//	vecpack lattice
//	vecpack convert --from int32 --to int64 3 4
//	vecpack pack --kind uint8 --word 32 10 20 30 40          # 0x281E140A
//	vecpack pack --kind uint8 --word 32 --widths 5,6,5 31 63 31
//	vecpack unpack --kind uint8 --word 32 --n 4 0x281E140A
//
// Set VECPACK_DEBUG=1 or pass --verbose for debug logs on stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
