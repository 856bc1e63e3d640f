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

// Package monoclock measures elapsed milliseconds on a monotonic time source
// and sleeps for a millisecond duration, in any of five unsigned result
// widths, without ever wrapping silently.
//
// A Clock owns the platform's time source. At most one Clock may be alive in
// a process; on the PIT platform the caller must also guarantee that nothing
// else touches the timer while the Clock is alive.
package monoclock

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/pingcap/log"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

// alive guards the process-wide single Clock.
var alive atomic.Bool

// Clock is the exclusive owner of a monotonic time source.
type Clock struct {
	platform Platform
	closed   atomic.Bool
}

// New takes ownership of the platform's time source. It panics with
// ErrClockInUse if another Clock has not been closed yet.
func New(p Platform) *Clock {
	if !alive.CompareAndSwap(false, true) {
		log.Error("create monotonic clock failed", zap.Stringer("platform", p.Kind()), errs.ZapError(errs.ErrClockInUse))
		panic(errs.ErrClockInUse.FastGenByArgs())
	}
	p.open()
	log.Info("monotonic clock created", zap.Stringer("platform", p.Kind()))
	return &Clock{platform: p}
}

// Close releases the time source so that another Clock can be created.
// Closing twice is a no-op.
func (c *Clock) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.platform.close()
	alive.Store(false)
	log.Info("monotonic clock released", zap.Stringer("platform", c.platform.Kind()))
}

// Kind returns the platform kind of the clock.
func (c *Clock) Kind() Kind {
	return c.platform.Kind()
}

// Time returns the current Timestamp. It never blocks.
func (c *Clock) Time() Timestamp {
	ts := c.platform.read()
	ts.clock = c
	return ts
}

// SleepMSU8 blocks for ms milliseconds.
func (c *Clock) SleepMSU8(ms uint8) { Sleep(c, widthutil.U8, ms) }

// SleepMSU16 blocks for ms milliseconds.
func (c *Clock) SleepMSU16(ms uint16) { Sleep(c, widthutil.U16, ms) }

// SleepMSU32 blocks for ms milliseconds.
func (c *Clock) SleepMSU32(ms uint32) { Sleep(c, widthutil.U32, ms) }

// SleepMSU64 blocks for ms milliseconds.
func (c *Clock) SleepMSU64(ms uint64) { Sleep(c, widthutil.U64, ms) }

// SleepMSU128 blocks for ms milliseconds.
func (c *Clock) SleepMSU128(ms widthutil.Uint128) { Sleep(c, widthutil.U128, ms) }
