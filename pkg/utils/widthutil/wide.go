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

package widthutil

import "lukechampine.com/uint128"

// Uint128 is the 128-bit unsigned width.
type Uint128 = uint128.Uint128

// NewUint128 builds a 128-bit value from its high and low halves.
func NewUint128(hi, lo uint64) Uint128 {
	return uint128.New(lo, hi)
}

// wide implements Width on top of uint128, whose own arithmetic panics on
// overflow; every operation here checks before delegating.
type wide struct{}

func (wide) Name() string { return "u128" }

func (wide) Bits() int { return 128 }

func (wide) Zero() Uint128 { return uint128.Zero }

func (wide) Max() Uint128 { return uint128.Max }

func (wide) IsZero(v Uint128) bool { return v.IsZero() }

func (wide) Cmp(a, b Uint128) int { return a.Cmp(b) }

func (wide) FromUint64(v uint64) (Uint128, bool) {
	return uint128.From64(v), true
}

func (wide) ToUint64(v Uint128) (uint64, bool) {
	if v.Hi != 0 {
		return 0, false
	}
	return v.Lo, true
}

func (wide) Add(a, b Uint128) (Uint128, bool) {
	if uint128.Max.Sub(a).Cmp(b) < 0 {
		return uint128.Zero, false
	}
	return a.Add(b), true
}

func (wide) Sub(a, b Uint128) (Uint128, bool) {
	if a.Cmp(b) < 0 {
		return uint128.Zero, false
	}
	return a.Sub(b), true
}

func (wide) Mul(a, b Uint128) (Uint128, bool) {
	if a.IsZero() || b.IsZero() {
		return uint128.Zero, true
	}
	if uint128.Max.Div(a).Cmp(b) < 0 {
		return uint128.Zero, false
	}
	return a.Mul(b), true
}

func (wide) QuoRem(a, b Uint128) (q, r Uint128) {
	return a.QuoRem(b)
}

func (wide) String(v Uint128) string {
	return v.String()
}

func (wide) Parse(s string) (Uint128, error) {
	return uint128.FromString(s)
}
