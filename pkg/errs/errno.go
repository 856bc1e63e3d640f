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

package errs

import "github.com/pingcap/errors"

// clock errors
var (
	ErrClockInUse        = errors.Normalize("another monotonic clock is still alive", errors.RFCCodeText("MONO:clock:ErrClockInUse"))
	ErrClockRead         = errors.Normalize("read monotonic clock failed", errors.RFCCodeText("MONO:clock:ErrClockRead"))
	ErrUnknownPlatform   = errors.Normalize("unknown platform %s", errors.RFCCodeText("MONO:clock:ErrUnknownPlatform"))
	ErrInvalidPITDivisor = errors.Normalize("invalid timer divisor %d", errors.RFCCodeText("MONO:clock:ErrInvalidPITDivisor"))
)

// timestamp errors
var (
	ErrTimestampOrder    = errors.Normalize("earlier timestamp is after the later one", errors.RFCCodeText("MONO:timestamp:ErrTimestampOrder"))
	ErrTimestampKind     = errors.Normalize("timestamps come from different platforms, %s and %s", errors.RFCCodeText("MONO:timestamp:ErrTimestampKind"))
	ErrTimestampDetached = errors.Normalize("timestamp is not bound to a clock", errors.RFCCodeText("MONO:timestamp:ErrTimestampDetached"))
)

// config errors
var (
	ErrLoadConfig   = errors.Normalize("load config failed", errors.RFCCodeText("MONO:config:ErrLoadConfig"))
	ErrInitLogger   = errors.Normalize("init logger failed", errors.RFCCodeText("MONO:config:ErrInitLogger"))
	ErrInvalidWidth = errors.Normalize("invalid width %s", errors.RFCCodeText("MONO:config:ErrInvalidWidth"))
	ErrParseValue   = errors.Normalize("parse %s as %s failed", errors.RFCCodeText("MONO:config:ErrParseValue"))
)
