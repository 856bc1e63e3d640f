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

// DefaultMaxTickSleep is the longest single millisecond sleep. math.MaxUint32
// itself is reserved by the OS call as "forever".
const DefaultMaxTickSleep = uint32(1<<32 - 2)

type tickPlatform struct {
	counter  TickCounter
	sleeper  MilliSleeper
	maxChunk uint32
}

// NewTickPlatform creates a platform on a 64-bit millisecond tick counter.
// maxChunk bounds the argument of one sleep call; zero means
// DefaultMaxTickSleep.
func NewTickPlatform(counter TickCounter, sleeper MilliSleeper, maxChunk uint32) Platform {
	if maxChunk == 0 {
		maxChunk = DefaultMaxTickSleep
	}
	return &tickPlatform{
		counter:  counter,
		sleeper:  sleeper,
		maxChunk: maxChunk,
	}
}

func (*tickPlatform) Kind() Kind { return KindTicks }

func (*tickPlatform) open() {}

func (*tickPlatform) close() {}

func (p *tickPlatform) read() Timestamp {
	return Timestamp{kind: KindTicks, ticks: p.counter.TickCount64()}
}

func (p *tickPlatform) sleep(ms uint32) {
	sleepPrimitiveCounter.WithLabelValues(KindTicks.String()).Inc()
	p.sleeper.SleepMS(ms)
}
