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

//go:build !linux && !windows

package monoclock

import (
	"math"
	"time"
)

// HostPlatform returns the posix platform on the Go runtime monotonic clock.
// The seconds of one sleep are bounded by what a time.Duration holds.
func HostPlatform() Platform {
	return NewPosixPlatform(
		TimespecReaderFunc(func() (int64, int64, error) {
			elapsed := time.Since(processStart)
			return int64(elapsed / time.Second), int64(elapsed % time.Second), nil
		}),
		NanosleepFunc(func(sec, nsec int64) {
			time.Sleep(time.Duration(sec)*time.Second + time.Duration(nsec))
		}),
		int64(math.MaxInt64/time.Second)-1,
	)
}
