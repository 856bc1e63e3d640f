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

//go:build linux

package monoclock

import (
	"math"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/pingcap/failpoint"
)

// HostPlatform returns the posix platform on CLOCK_MONOTONIC and nanosleep.
func HostPlatform() Platform {
	var ts unix.Timespec
	return NewPosixPlatform(
		TimespecReaderFunc(readClockMonotonic),
		NanosleepFunc(nanosleep),
		timeTMax(&ts.Sec),
	)
}

func readClockMonotonic() (sec, nsec int64, err error) {
	failpoint.Inject("clockReadFailure", func() {
		failpoint.Return(int64(0), int64(0), unix.EINVAL)
	})
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, 0, err
	}
	sec, nsec = ts.Unix()
	return sec, nsec, nil
}

func nanosleep(sec, nsec int64) {
	var ts, rem unix.Timespec
	setTimespec(&ts.Sec, &ts.Nsec, sec, nsec)
	// The Go runtime signals its threads, resume with what is left.
	for unix.Nanosleep(&ts, &rem) == unix.EINTR {
		ts = rem
	}
}

// timeTMax returns the largest value of the platform's time_t.
func timeTMax[S ~int32 | ~int64](*S) int64 {
	var s S
	if unsafe.Sizeof(s) == 4 {
		return math.MaxInt32
	}
	return math.MaxInt64
}

func setTimespec[S, N ~int32 | ~int64](sec *S, nsec *N, s, n int64) {
	*sec = S(s)
	*nsec = N(n)
}
