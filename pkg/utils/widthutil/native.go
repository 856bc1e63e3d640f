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

import (
	"strconv"

	"fortio.org/safecast"
)

// Unsigned is the constraint satisfied by the native unsigned widths.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type native[T Unsigned] struct {
	name string
	bits int
}

func (n native[T]) Name() string { return n.name }

func (n native[T]) Bits() int { return n.bits }

func (native[T]) Zero() T { return 0 }

func (native[T]) Max() T { return ^T(0) }

func (native[T]) IsZero(v T) bool { return v == 0 }

func (native[T]) Cmp(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (native[T]) FromUint64(v uint64) (T, bool) {
	out, err := safecast.Conv[T](v)
	if err != nil {
		return 0, false
	}
	return out, true
}

func (native[T]) ToUint64(v T) (uint64, bool) {
	return uint64(v), true
}

func (native[T]) Add(a, b T) (T, bool) {
	if ^T(0)-a < b {
		return 0, false
	}
	return a + b, true
}

func (native[T]) Sub(a, b T) (T, bool) {
	if a < b {
		return 0, false
	}
	return a - b, true
}

func (native[T]) Mul(a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if ^T(0)/a < b {
		return 0, false
	}
	return a * b, true
}

func (native[T]) QuoRem(a, b T) (q, r T) {
	return a / b, a % b
}

func (native[T]) String(v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

func (n native[T]) Parse(s string) (T, error) {
	v, err := strconv.ParseUint(s, 10, n.bits)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}
