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

// Kind identifies how a platform represents a monotonic reading.
type Kind int

const (
	// KindPosix reads (seconds, nanoseconds) from a monotonic clock and sleeps
	// with a (seconds, nanoseconds) pair whose seconds field is bounded.
	KindPosix Kind = iota + 1
	// KindTicks reads a 64-bit millisecond tick counter and sleeps with a
	// 32-bit millisecond argument.
	KindTicks
	// KindPIT reads a wrapping 32-bit hardware tick counter and has no sleep
	// primitive at all.
	KindPIT
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPosix:
		return "posix"
	case KindTicks:
		return "ticks"
	case KindPIT:
		return "pit"
	default:
		return "unknown"
	}
}

// Platform bundles the primitives a Clock is built on. Implementations are
// created by NewPosixPlatform, NewTickPlatform, NewPITPlatform and
// HostPlatform.
type Platform interface {
	Kind() Kind
	// open is called once when a Clock takes ownership of the platform.
	open()
	// close is called once when that Clock is released.
	close()
	read() Timestamp
}

// TimespecReader reads a monotonic clock as whole seconds plus nanoseconds.
type TimespecReader interface {
	ReadMonotonic() (sec, nsec int64, err error)
}

// TimespecReaderFunc adapts a function to TimespecReader.
type TimespecReaderFunc func() (sec, nsec int64, err error)

// ReadMonotonic implements TimespecReader.
func (f TimespecReaderFunc) ReadMonotonic() (sec, nsec int64, err error) {
	return f()
}

// TimespecSleeper blocks for sec seconds plus nsec nanoseconds.
type TimespecSleeper interface {
	Nanosleep(sec, nsec int64)
}

// NanosleepFunc adapts a function to TimespecSleeper.
type NanosleepFunc func(sec, nsec int64)

// Nanosleep implements TimespecSleeper.
func (f NanosleepFunc) Nanosleep(sec, nsec int64) {
	f(sec, nsec)
}

// TickCounter reads a monotonically non-decreasing millisecond counter.
type TickCounter interface {
	TickCount64() uint64
}

// TickCounterFunc adapts a function to TickCounter.
type TickCounterFunc func() uint64

// TickCount64 implements TickCounter.
func (f TickCounterFunc) TickCount64() uint64 {
	return f()
}

// MilliSleeper blocks for ms milliseconds.
type MilliSleeper interface {
	SleepMS(ms uint32)
}

// MilliSleeperFunc adapts a function to MilliSleeper.
type MilliSleeperFunc func(ms uint32)

// SleepMS implements MilliSleeper.
func (f MilliSleeperFunc) SleepMS(ms uint32) {
	f(ms)
}
