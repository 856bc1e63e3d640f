// Copyright 2026 TiKV Project Authors.
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

// Package widthutil describes the unsigned integer widths a millisecond value
// can be produced in or consumed from. Every arithmetic operation is checked:
// a result that does not fit is reported with ok == false and never wraps.
package widthutil

import "github.com/elliotchance/pie/v2"

// Width is the set of checked operations on an unsigned integer type T.
type Width[T any] interface {
	// Name returns the short name of the width, e.g. "u32".
	Name() string
	// Bits returns the number of bits of T.
	Bits() int
	// Zero returns the zero value of T.
	Zero() T
	// Max returns the largest value T can hold.
	Max() T
	IsZero(v T) bool
	// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to
	// or greater than b.
	Cmp(a, b T) int
	// FromUint64 converts v into T, ok is false if v does not fit.
	FromUint64(v uint64) (T, bool)
	// ToUint64 converts v into uint64, ok is false if v does not fit.
	ToUint64(v T) (uint64, bool)
	Add(a, b T) (T, bool)
	Sub(a, b T) (T, bool)
	Mul(a, b T) (T, bool)
	// QuoRem returns a/b and a%b. b must not be zero.
	QuoRem(a, b T) (q, r T)
	// String formats v in base 10.
	String(v T) string
	// Parse reads a base 10 value of T.
	Parse(s string) (T, error)
}

// The five supported widths.
var (
	U8   Width[uint8]   = native[uint8]{name: "u8", bits: 8}
	U16  Width[uint16]  = native[uint16]{name: "u16", bits: 16}
	U32  Width[uint32]  = native[uint32]{name: "u32", bits: 32}
	U64  Width[uint64]  = native[uint64]{name: "u64", bits: 64}
	U128 Width[Uint128] = wide{}
)

// Names lists the width names in ascending order.
func Names() []string {
	return []string{U8.Name(), U16.Name(), U32.Name(), U64.Name(), U128.Name()}
}

// IsLegal checks whether name is one of the supported widths.
func IsLegal(name string) bool {
	return pie.Contains(Names(), name)
}
