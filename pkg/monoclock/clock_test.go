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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

func TestSingleClock(t *testing.T) {
	re := require.New(t)
	src := &fakeTicks{}
	c := New(NewTickPlatform(src, src, 0))
	re.Equal(KindTicks, c.Kind())
	re.Panics(func() { New(NewTickPlatform(src, src, 0)) })

	c.Close()
	c.Close()
	other := New(NewTickPlatform(src, src, 0))
	// Closing a released clock again must not free the live one.
	c.Close()
	re.Panics(func() { New(NewTickPlatform(src, src, 0)) })
	other.Close()
}

func TestHostClock(t *testing.T) {
	re := require.New(t)
	c := New(HostPlatform())
	defer c.Close()

	t0 := c.Time()
	c.SleepMSU32(100)
	t1 := c.Time()
	v, ok := t1.DeltaMSU32(t0)
	re.True(ok)
	re.GreaterOrEqual(v, uint32(100))

	v8, ok := t1.DeltaMSU8(t1)
	re.True(ok)
	re.Zero(v8)
}

func TestPosixReadFailure(t *testing.T) {
	re := require.New(t)
	src := &fakeTimespec{err: errors.New("clock is gone")}
	c := New(NewPosixPlatform(src, src, 0))
	defer c.Close()
	re.Panics(func() { c.Time() })

	src.err = nil
	src.nsec = int64(time.Second)
	re.Panics(func() { c.Time() })

	src.sec, src.nsec = 3, 999_999_999
	ts := c.Time()
	v, ok := ts.DeltaMSU16(posixAt(2, 0))
	re.True(ok)
	re.Equal(uint16(1999), v)
}

func TestPITPlatform(t *testing.T) {
	re := require.New(t)
	_, err := NewPITPlatform(&fakePIT{}, PITConfig{Divisor: 100})
	re.Error(err)

	timer := &fakePIT{step: 3}
	p, err := NewPITPlatform(timer, PITConfig{})
	re.NoError(err)
	re.Equal(KindPIT, p.Kind())

	c := New(p)
	re.Equal(1, timer.programs)
	re.Equal(uint16(DefaultPITDivisor), timer.divisor)

	t0 := c.Time()
	v, ok := c.Time().DeltaMSU8(t0)
	re.True(ok)
	re.Equal(uint8(24), v)

	c.Close()
	re.Equal(1, timer.resets)
}

func TestPITConfig(t *testing.T) {
	re := require.New(t)
	cfg := PITConfig{}
	cfg.Adjust()
	re.Equal(uint16(DefaultPITDivisor), cfg.Divisor)
	re.Equal(DefaultSpinCount, cfg.SpinCount)
	re.Equal(uint64(8), cfg.MillisPerTick())

	re.Equal(uint64(55), PITConfig{Divisor: 65535}.MillisPerTick())
	re.Equal(uint64(1), PITConfig{Divisor: 1193}.MillisPerTick())
	re.Zero(PITConfig{Divisor: 596}.MillisPerTick())
}

func TestSimulatedPIT(t *testing.T) {
	re := require.New(t)
	var now time.Duration
	pit := NewSimulatedPIT(func() time.Duration { return now })
	now = time.Hour
	pit.Program(DefaultPITDivisor)
	re.Zero(pit.Ticks())

	now += 80 * time.Millisecond
	re.Equal(uint32(10), pit.Ticks())

	// Power-on rate is 65536, about 18.2 ticks per second.
	pit.Reset()
	now += time.Second
	re.Equal(uint32(18), pit.Ticks())

	// The counter wraps like the hardware one.
	// 1<<32 + 5 ticks at the default rate.
	pit.Program(DefaultPITDivisor)
	now += 34358096994461030
	re.Equal(uint32(5), pit.Ticks())
}

func TestSimulatedPITClock(t *testing.T) {
	re := require.New(t)
	p, err := NewPITPlatform(NewSimulatedPIT(nil), PITConfig{})
	re.NoError(err)
	c := New(p)
	defer c.Close()

	lap := c.Time()
	c.SleepMSU16(40)
	v, ok := lap.SplitMSU16()
	re.True(ok)
	re.Greater(v, uint16(40))
}

func TestHostFreeFunctions(t *testing.T) {
	re := require.New(t)
	before := MonotonicMillis()
	SleepMillis(widthutil.NewUint128(0, 0))
	SleepMillis(widthutil.NewUint128(0, 20))
	after := MonotonicMillis()
	re.GreaterOrEqual(after.Cmp(before), 0)
	re.GreaterOrEqual(after.Sub(before).Cmp64(20), 0)
}
