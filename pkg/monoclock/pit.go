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
	"runtime"
	"sync/atomic"
	"time"

	"lukechampine.com/uint128"

	"github.com/tikv/monoclock/pkg/errs"
)

const (
	// PITFrequency is the input frequency of the interval timer in Hz.
	PITFrequency = 1193182
	// DefaultPITDivisor programs the timer to roughly 125 Hz, one tick per 8ms.
	DefaultPITDivisor = 9545
	// DefaultSpinCount is the number of pause hints issued between two clock
	// reads while busy-waiting.
	DefaultSpinCount = 64
)

// PIT is a programmable interval timer together with the tick counter its
// interrupt maintains. The counter wraps at 32 bits.
type PIT interface {
	// Program sets the timer divisor and restarts the tick rate.
	Program(divisor uint16)
	// Ticks returns the number of timer interrupts seen so far.
	Ticks() uint32
	// Pause executes one no-op spin hint.
	Pause()
	// Reset returns the timer to its power-on rate.
	Reset()
}

// PITConfig configures the timer a PIT platform owns.
type PITConfig struct {
	Divisor   uint16 `toml:"divisor" json:"divisor"`
	SpinCount int    `toml:"spin-count" json:"spin-count"`
}

// Adjust fills the zero fields with their defaults.
func (c *PITConfig) Adjust() {
	if c.Divisor == 0 {
		c.Divisor = DefaultPITDivisor
	}
	if c.SpinCount <= 0 {
		c.SpinCount = DefaultSpinCount
	}
}

// MillisPerTick returns the tick-to-millisecond factor for the divisor,
// rounded to the nearest millisecond.
func (c PITConfig) MillisPerTick() uint64 {
	return (uint64(c.Divisor)*1000 + PITFrequency/2) / PITFrequency
}

type pitPlatform struct {
	timer PIT
	cfg   PITConfig
	scale uint64
}

// NewPITPlatform creates a platform that owns timer. Zero fields of cfg are
// filled with defaults. The divisor must give at least one millisecond per
// tick.
func NewPITPlatform(timer PIT, cfg PITConfig) (Platform, error) {
	cfg.Adjust()
	scale := cfg.MillisPerTick()
	if scale == 0 {
		return nil, errs.ErrInvalidPITDivisor.FastGenByArgs(cfg.Divisor)
	}
	return &pitPlatform{timer: timer, cfg: cfg, scale: scale}, nil
}

func (*pitPlatform) Kind() Kind { return KindPIT }

func (p *pitPlatform) open() {
	p.timer.Program(p.cfg.Divisor)
}

func (p *pitPlatform) close() {
	p.timer.Reset()
}

func (p *pitPlatform) read() Timestamp {
	return Timestamp{kind: KindPIT, ticks: uint64(p.timer.Ticks()), scale: p.scale}
}

func (p *pitPlatform) spin() {
	for i := 0; i < p.cfg.SpinCount; i++ {
		p.timer.Pause()
	}
	spinIterationCounter.Inc()
}

// SimulatedPIT is a software interval timer. It derives its tick counter
// from a monotonic nanosecond source at the programmed rate, so a PIT
// platform can run on a hosted machine.
type SimulatedPIT struct {
	now     func() time.Duration
	base    atomic.Int64
	divisor atomic.Uint32
}

var processStart = time.Now()

// NewSimulatedPIT creates a SimulatedPIT reading now. A nil now uses the Go
// runtime monotonic clock.
func NewSimulatedPIT(now func() time.Duration) *SimulatedPIT {
	if now == nil {
		now = func() time.Duration { return time.Since(processStart) }
	}
	p := &SimulatedPIT{now: now}
	p.Reset()
	return p
}

// Program implements PIT. A zero divisor means 65536, as on the hardware.
func (p *SimulatedPIT) Program(divisor uint16) {
	d := uint32(divisor)
	if d == 0 {
		d = 1 << 16
	}
	p.divisor.Store(d)
	p.base.Store(int64(p.now()))
}

// Ticks implements PIT.
func (p *SimulatedPIT) Ticks() uint32 {
	elapsed := int64(p.now()) - p.base.Load()
	if elapsed <= 0 {
		return 0
	}
	ticks := uint128.From64(uint64(elapsed)).
		Mul64(PITFrequency).
		Div64(uint64(p.divisor.Load()) * uint64(time.Second))
	// The hardware counter wraps.
	return uint32(ticks.Lo)
}

// Pause implements PIT.
func (*SimulatedPIT) Pause() {
	runtime.Gosched()
}

// Reset implements PIT.
func (p *SimulatedPIT) Reset() {
	p.Program(0)
}
