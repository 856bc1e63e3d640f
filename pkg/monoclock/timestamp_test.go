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
	"math"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

func TestDeltaBorrow(t *testing.T) {
	re := require.New(t)
	earlier := posixAt(5, 800)
	later := posixAt(6, 200)

	v16, ok := later.DeltaMSU16(earlier)
	re.True(ok)
	re.Equal(uint16(400), v16)
	v64, ok := later.DeltaMSU64(earlier)
	re.True(ok)
	re.Equal(uint64(400), v64)
	// 400 does not fit in 8 bits.
	_, ok = later.DeltaMSU8(earlier)
	re.False(ok)

	v8, ok := posixAt(6, 100).DeltaMSU8(posixAt(5, 900))
	re.True(ok)
	re.Equal(uint8(200), v8)
}

func TestDeltaTimespecOverflow(t *testing.T) {
	re := require.New(t)
	testCases := []struct {
		name    string
		later   Timestamp
		u8, u16 bool
		want    uint64
	}{
		{name: "zero", later: posixAt(10, 0), u8: true, u16: true, want: 0},
		{name: "u8 max", later: posixAt(10, 255), u8: true, u16: true, want: 255},
		{name: "past u8", later: posixAt(10, 256), u8: false, u16: true, want: 256},
		{name: "one second", later: posixAt(11, 0), u8: false, u16: true, want: 1000},
		{name: "u16 max", later: posixAt(75, 535), u8: false, u16: true, want: 65535},
		{name: "add overflow", later: posixAt(75, 536), u8: false, u16: false, want: 65536},
		{name: "mul overflow", later: posixAt(76, 0), u8: false, u16: false, want: 66000},
	}
	earlier := posixAt(10, 0)
	for _, tc := range testCases {
		v8, ok := tc.later.DeltaMSU8(earlier)
		re.Equal(tc.u8, ok, tc.name)
		if ok {
			re.Equal(tc.want, uint64(v8), tc.name)
		}
		v16, ok := tc.later.DeltaMSU16(earlier)
		re.Equal(tc.u16, ok, tc.name)
		if ok {
			re.Equal(tc.want, uint64(v16), tc.name)
		}
		v32, ok := tc.later.DeltaMSU32(earlier)
		re.True(ok, tc.name)
		re.Equal(tc.want, uint64(v32), tc.name)
	}
}

func TestDeltaTimespecWide(t *testing.T) {
	re := require.New(t)
	later := posixAt(math.MaxInt64, 999)
	earlier := posixAt(0, 0)

	_, ok := later.DeltaMSU64(earlier)
	re.False(ok)
	v, ok := later.DeltaMSU128(earlier)
	re.True(ok)
	want := widthutil.NewUint128(0, math.MaxInt64).Mul64(1000).Add64(999)
	re.True(v.Equals(want))

	// The largest second count a 64-bit result can carry.
	secs := int64(math.MaxUint64 / 1000)
	v64, ok := posixAt(secs, 0).DeltaMSU64(earlier)
	re.True(ok)
	re.Equal(uint64(secs)*1000, v64)
	_, ok = posixAt(secs+1, 0).DeltaMSU64(earlier)
	re.False(ok)

	// Seconds before the epoch are still ordered correctly.
	v32, ok := posixAt(1, 0).DeltaMSU32(posixAt(-2, 500))
	re.True(ok)
	re.Equal(uint32(2500), v32)
}

func TestDeltaConsistentAcrossWidths(t *testing.T) {
	re := require.New(t)
	for i := 0; i < 1000; i++ {
		earlier := posixAt(rand.Int63n(1<<40), int16(rand.Intn(1000)))
		d := rand.Int63n(1 << 20)
		later := earlier
		total := int64(later.milli) + d
		later.sec += total / 1000
		later.milli = int16(total % 1000)

		v8, ok8 := later.DeltaMSU8(earlier)
		v16, ok16 := later.DeltaMSU16(earlier)
		v32, ok32 := later.DeltaMSU32(earlier)
		v64, ok64 := later.DeltaMSU64(earlier)
		v128, ok128 := later.DeltaMSU128(earlier)
		re.True(ok32)
		re.True(ok64)
		re.True(ok128)
		re.Equal(uint64(d), v64)
		re.Equal(uint32(d), v32)
		re.True(v128.Equals64(uint64(d)))
		re.Equal(d <= math.MaxUint8, ok8)
		if ok8 {
			re.Equal(uint64(v8), v64)
		}
		re.Equal(d <= math.MaxUint16, ok16)
		if ok16 {
			re.Equal(uint64(v16), v64)
		}
	}
}

func TestDeltaOutOfOrder(t *testing.T) {
	re := require.New(t)
	re.Panics(func() { posixAt(5, 0).DeltaMSU32(posixAt(6, 0)) })
	// Equal seconds, borrow would make the second difference negative.
	re.Panics(func() { posixAt(5, 100).DeltaMSU32(posixAt(5, 200)) })
	re.Panics(func() { ticksAt(10).DeltaMSU32(ticksAt(11)) })
	re.Panics(func() { ticksAt(10).DeltaMSU32(posixAt(0, 0)) })
	re.Panics(func() { Timestamp{}.DeltaMSU32(Timestamp{}) })

	v, ok := posixAt(5, 200).DeltaMSU32(posixAt(5, 200))
	re.True(ok)
	re.Zero(v)
}

func TestDeltaTicks(t *testing.T) {
	re := require.New(t)
	v8, ok := ticksAt(1255).DeltaMSU8(ticksAt(1000))
	re.True(ok)
	re.Equal(uint8(255), v8)
	_, ok = ticksAt(1256).DeltaMSU8(ticksAt(1000))
	re.False(ok)

	v32, ok := ticksAt(math.MaxUint32).DeltaMSU32(ticksAt(0))
	re.True(ok)
	re.Equal(uint32(math.MaxUint32), v32)
	_, ok = ticksAt(math.MaxUint32 + 1).DeltaMSU32(ticksAt(0))
	re.False(ok)

	v64, ok := ticksAt(math.MaxUint64).DeltaMSU64(ticksAt(0))
	re.True(ok)
	re.Equal(uint64(math.MaxUint64), v64)
}

func TestDeltaPIT(t *testing.T) {
	re := require.New(t)
	v8, ok := pitAt(31, 8).DeltaMSU8(pitAt(0, 8))
	re.True(ok)
	re.Equal(uint8(248), v8)
	_, ok = pitAt(32, 8).DeltaMSU8(pitAt(0, 8))
	re.False(ok)

	// The counter wraps, the elapsed ticks do not.
	v16, ok := pitAt(1, 8).DeltaMSU16(pitAt(math.MaxUint32-1, 8))
	re.True(ok)
	re.Equal(uint16(24), v16)

	v64, ok := pitAt(math.MaxUint32, 55).DeltaMSU64(pitAt(0, 55))
	re.True(ok)
	re.Equal(uint64(math.MaxUint32)*55, v64)

	v8, ok = pitAt(7, 8).DeltaMSU8(pitAt(7, 8))
	re.True(ok)
	re.Zero(v8)
}

func TestDeltaOverflowMetric(t *testing.T) {
	re := require.New(t)
	before := testutil.ToFloat64(deltaOverflowCounter.WithLabelValues("u8"))
	_, ok := ticksAt(256).DeltaMSU8(ticksAt(0))
	re.False(ok)
	re.Equal(before+1, testutil.ToFloat64(deltaOverflowCounter.WithLabelValues("u8")))
}

func TestSplit(t *testing.T) {
	re := require.New(t)
	src := &fakeTimespec{sec: 100}
	c := New(NewPosixPlatform(src, src, 0))
	defer c.Close()

	lap := c.Time()
	src.advance(250)
	v8, ok := lap.SplitMSU8()
	re.True(ok)
	re.Equal(uint8(250), v8)

	src.advance(300)
	_, ok = lap.SplitMSU8()
	re.False(ok)
	// The lap restarted even though the delta did not fit.
	src.advance(1)
	v32, ok := lap.SplitMSU32()
	re.True(ok)
	re.Equal(uint32(1), v32)

	src.advance(70_000)
	v128, ok := lap.SplitMSU128()
	re.True(ok)
	re.True(v128.Equals64(70_000))

	detached := posixAt(1, 0)
	re.Panics(func() { detached.SplitMSU16() })
}
