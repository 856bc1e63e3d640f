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

package monoclock

import (
	"go.uber.org/zap"

	"github.com/pingcap/log"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

// Timestamp is a snapshot of a monotonic time source. Its content is only
// meaningful through the delta functions.
type Timestamp struct {
	// clock is only used by Split.
	clock *Clock
	kind  Kind
	// KindPosix.
	sec   int64
	milli int16
	// KindTicks, and the wrapping counter of KindPIT.
	ticks uint64
	// KindPIT milliseconds per tick.
	scale uint64
}

// Kind returns the platform kind that produced the timestamp.
func (t Timestamp) Kind() Kind {
	return t.kind
}

// Delta returns later - earlier in whole milliseconds. ok is false if the
// result does not fit in T. It panics with ErrTimestampOrder if earlier is
// after later, and with ErrTimestampKind if the two come from different
// platforms.
func Delta[T any](w widthutil.Width[T], later, earlier Timestamp) (v T, ok bool) {
	if later.kind != earlier.kind {
		panic(errs.ErrTimestampKind.FastGenByArgs(later.kind, earlier.kind))
	}
	switch later.kind {
	case KindPosix:
		v, ok = deltaTimespec(w, later, earlier)
	case KindTicks:
		v, ok = deltaTicks(w, later, earlier)
	case KindPIT:
		v, ok = deltaPIT(w, later, earlier)
	default:
		panic(errs.ErrTimestampDetached.FastGenByArgs())
	}
	if !ok {
		deltaOverflowCounter.WithLabelValues(w.Name()).Inc()
	}
	return v, ok
}

func outOfOrder() {
	log.Error("compute timestamp delta failed", errs.ZapError(errs.ErrTimestampOrder))
	panic(errs.ErrTimestampOrder.FastGenByArgs())
}

func deltaTimespec[T any](w widthutil.Width[T], later, earlier Timestamp) (T, bool) {
	if later.sec < earlier.sec {
		outOfOrder()
	}
	// Exact even when the signed difference would overflow int64.
	sec := uint64(later.sec) - uint64(earlier.sec)
	milli := later.milli - earlier.milli
	if milli < 0 {
		if sec == 0 {
			outOfOrder()
		}
		sec--
		milli += 1000
	}

	ms, ok := w.FromUint64(uint64(milli))
	if !ok {
		return w.Zero(), false
	}
	s, ok := w.FromUint64(sec)
	if !ok {
		return w.Zero(), false
	}
	thousand, ok := w.FromUint64(1000)
	if !ok {
		// T cannot hold one second, the multiplier degenerates to 1.
		if !w.IsZero(s) {
			return w.Zero(), false
		}
		thousand, _ = w.FromUint64(1)
	}
	s, ok = w.Mul(s, thousand)
	if !ok {
		return w.Zero(), false
	}
	return w.Add(s, ms)
}

func deltaTicks[T any](w widthutil.Width[T], later, earlier Timestamp) (T, bool) {
	if later.ticks < earlier.ticks {
		outOfOrder()
	}
	return w.FromUint64(later.ticks - earlier.ticks)
}

func deltaPIT[T any](w widthutil.Width[T], later, earlier Timestamp) (T, bool) {
	// The hardware counter wraps at 32 bits, so the wrapping difference is
	// the elapsed tick count.
	ticks := uint32(later.ticks) - uint32(earlier.ticks)
	if ticks == 0 {
		return w.Zero(), true
	}
	t, ok := w.FromUint64(uint64(ticks))
	if !ok {
		return w.Zero(), false
	}
	scale, ok := w.FromUint64(later.scale)
	if !ok {
		return w.Zero(), false
	}
	return w.Mul(t, scale)
}

// DeltaMSU8 returns the milliseconds elapsed since earlier, ok is false on overflow.
func (t Timestamp) DeltaMSU8(earlier Timestamp) (uint8, bool) {
	return Delta(widthutil.U8, t, earlier)
}

// DeltaMSU16 returns the milliseconds elapsed since earlier, ok is false on overflow.
func (t Timestamp) DeltaMSU16(earlier Timestamp) (uint16, bool) {
	return Delta(widthutil.U16, t, earlier)
}

// DeltaMSU32 returns the milliseconds elapsed since earlier, ok is false on overflow.
func (t Timestamp) DeltaMSU32(earlier Timestamp) (uint32, bool) {
	return Delta(widthutil.U32, t, earlier)
}

// DeltaMSU64 returns the milliseconds elapsed since earlier, ok is false on overflow.
func (t Timestamp) DeltaMSU64(earlier Timestamp) (uint64, bool) {
	return Delta(widthutil.U64, t, earlier)
}

// DeltaMSU128 returns the milliseconds elapsed since earlier, ok is false on overflow.
func (t Timestamp) DeltaMSU128(earlier Timestamp) (widthutil.Uint128, bool) {
	return Delta(widthutil.U128, t, earlier)
}

// Split reads the clock that produced t, replaces t with the new reading and
// returns the milliseconds between the two, like a stopwatch lap.
func Split[T any](w widthutil.Width[T], t *Timestamp) (T, bool) {
	if t.clock == nil {
		log.Error("split timestamp failed", zap.Stringer("kind", t.kind), errs.ZapError(errs.ErrTimestampDetached))
		panic(errs.ErrTimestampDetached.FastGenByArgs())
	}
	now := t.clock.Time()
	d, ok := Delta(w, now, *t)
	*t = now
	return d, ok
}

// SplitMSU8 is Split in 8 bits.
func (t *Timestamp) SplitMSU8() (uint8, bool) { return Split(widthutil.U8, t) }

// SplitMSU16 is Split in 16 bits.
func (t *Timestamp) SplitMSU16() (uint16, bool) { return Split(widthutil.U16, t) }

// SplitMSU32 is Split in 32 bits.
func (t *Timestamp) SplitMSU32() (uint32, bool) { return Split(widthutil.U32, t) }

// SplitMSU64 is Split in 64 bits.
func (t *Timestamp) SplitMSU64() (uint64, bool) { return Split(widthutil.U64, t) }

// SplitMSU128 is Split in 128 bits.
func (t *Timestamp) SplitMSU128() (widthutil.Uint128, bool) { return Split(widthutil.U128, t) }
