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

	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

// Sleep blocks the caller for at least ms milliseconds. Durations longer than
// one call of the platform primitive can express are issued as several calls.
// On the PIT platform it busy-waits on the clock.
func Sleep[T any](c *Clock, w widthutil.Width[T], ms T) {
	sleep(c.platform, w, ms)
}

func sleep[T any](p Platform, w widthutil.Width[T], ms T) {
	if w.IsZero(ms) {
		return
	}
	switch p := p.(type) {
	case *posixPlatform:
		sleepTimespec(p, w, ms)
	case *tickPlatform:
		sleepTicks(p, w, ms)
	case *pitPlatform:
		spinWait(p, w, ms)
	}
}

// sleepTicks issues maxChunk sized calls until the remainder fits in one.
func sleepTicks[T any](p *tickPlatform, w widthutil.Width[T], ms T) {
	chunk, chunkFits := w.FromUint64(uint64(p.maxChunk))
	for calls := 1; ; calls++ {
		// If T cannot hold the chunk size, every T value fits in one call.
		if !chunkFits || w.Cmp(ms, chunk) <= 0 {
			last, _ := w.ToUint64(ms)
			p.sleep(uint32(last))
			logChunks(w, calls, p.Kind())
			return
		}
		p.sleep(p.maxChunk)
		ms, _ = w.Sub(ms, chunk)
	}
}

// sleepTimespec splits ms into (seconds, milliseconds) and issues maxSeconds
// sized calls until the seconds fit in one. The sub-second part is only
// slept once, in the final call.
func sleepTimespec[T any](p *posixPlatform, w widthutil.Width[T], ms T) {
	thousand, ok := w.FromUint64(1000)
	if !ok {
		// T is narrower than one second.
		sub, _ := w.ToUint64(ms)
		p.nanosleep(0, int64(sub)*nanosPerMilli)
		return
	}
	maxSec, maxSecFits := w.FromUint64(uint64(p.maxSeconds))
	var chunk T
	if maxSecFits {
		// maxSec*1000 is only needed when some T value exceeds it, so it fits.
		chunk, _ = w.Mul(maxSec, thousand)
	}
	for calls := 1; ; calls++ {
		sec, sub := w.QuoRem(ms, thousand)
		if !maxSecFits || w.Cmp(sec, maxSec) <= 0 {
			s, _ := w.ToUint64(sec)
			subMS, _ := w.ToUint64(sub)
			p.nanosleep(int64(s), int64(subMS)*nanosPerMilli)
			logChunks(w, calls, p.Kind())
			return
		}
		p.nanosleep(p.maxSeconds, 0)
		ms, _ = w.Sub(ms, chunk)
	}
}

// spinWait polls the clock until strictly more than ms milliseconds have
// passed. An elapsed time that overflows T has passed ms as well.
func spinWait[T any](p *pitPlatform, w widthutil.Width[T], ms T) {
	start := p.read()
	for {
		p.spin()
		elapsed, ok := Delta(w, p.read(), start)
		if !ok || w.Cmp(elapsed, ms) > 0 {
			return
		}
	}
}

func logChunks[T any](w widthutil.Width[T], calls int, kind Kind) {
	if calls > 1 {
		log.Debug("long sleep split into several calls",
			zap.Stringer("platform", kind), zap.String("width", w.Name()), zap.Int("calls", calls))
	}
}
