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
	"sync"

	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

var hostPlatform = sync.OnceValue(HostPlatform)

// MonotonicMillis returns the milliseconds since the host clock's epoch. It
// does not need a Clock.
func MonotonicMillis() widthutil.Uint128 {
	return millisSinceEpoch(hostPlatform())
}

// SleepMillis blocks for ms milliseconds on the host platform. It does not
// need a Clock.
func SleepMillis(ms widthutil.Uint128) {
	sleep(hostPlatform(), widthutil.U128, ms)
}

func millisSinceEpoch(p Platform) widthutil.Uint128 {
	now := p.read()
	// 128 bits hold any reading.
	ms, _ := Delta(widthutil.U128, now, Timestamp{kind: now.kind, scale: now.scale})
	return ms
}
