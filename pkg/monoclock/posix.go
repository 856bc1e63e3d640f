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
	"time"

	"fortio.org/safecast"
	"go.uber.org/zap"

	"github.com/pingcap/log"

	"github.com/tikv/monoclock/pkg/errs"
)

const nanosPerMilli = int64(time.Millisecond)

type posixPlatform struct {
	reader  TimespecReader
	sleeper TimespecSleeper
	// maxSeconds is the largest value the sleep primitive's seconds field holds.
	maxSeconds int64
}

// NewPosixPlatform creates a platform on a (seconds, nanoseconds) monotonic
// clock. maxSeconds bounds the seconds field of one sleep call; a non-positive
// value means math.MaxInt64.
func NewPosixPlatform(reader TimespecReader, sleeper TimespecSleeper, maxSeconds int64) Platform {
	if maxSeconds <= 0 {
		maxSeconds = math.MaxInt64
	}
	return &posixPlatform{
		reader:     reader,
		sleeper:    sleeper,
		maxSeconds: maxSeconds,
	}
}

func (*posixPlatform) Kind() Kind { return KindPosix }

func (*posixPlatform) open() {}

func (*posixPlatform) close() {}

func (p *posixPlatform) read() Timestamp {
	sec, nsec, err := p.reader.ReadMonotonic()
	if err != nil {
		log.Error("read monotonic clock failed", errs.ZapError(errs.ErrClockRead, err))
		panic(errs.ErrClockRead.Wrap(err).FastGenWithCause())
	}
	milli, err := safecast.Conv[int16](nsec / nanosPerMilli)
	if err != nil || milli < 0 || milli >= 1000 {
		log.Error("monotonic clock returned an invalid sub-second part", zap.Int64("nsec", nsec))
		panic(errs.ErrClockRead.FastGenByArgs())
	}
	return Timestamp{kind: KindPosix, sec: sec, milli: milli}
}

func (p *posixPlatform) nanosleep(sec, nsec int64) {
	sleepPrimitiveCounter.WithLabelValues(KindPosix.String()).Inc()
	p.sleeper.Nanosleep(sec, nsec)
}
