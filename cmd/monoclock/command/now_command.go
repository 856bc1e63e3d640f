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

package command

import (
	"math"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/pingcap/log"

	"github.com/tikv/monoclock/pkg/monoclock"
	"github.com/tikv/monoclock/pkg/utils/logutil"
	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

// NewNowCommand returns a now subcommand of rootCmd
func NewNowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "show the milliseconds since the host monotonic clock epoch",
		Args:  cobra.NoArgs,
		Run:   showNowCommandFunc,
	}
}

func showNowCommandFunc(cmd *cobra.Command, _ []string) {
	ms := monoclock.MonotonicMillis()
	log.Debug("read host monotonic clock", logutil.ZapUint128("ms", ms))
	cmd.Printf("%s ms (%s)\n", widthutil.U128.String(ms), humanMillis(ms))
}

// humanMillis formats ms the way docker formats an uptime.
func humanMillis(ms widthutil.Uint128) string {
	v, ok := widthutil.U128.ToUint64(ms)
	if !ok || v > uint64(math.MaxInt64/int64(time.Millisecond)) {
		return "forever"
	}
	return units.HumanDuration(time.Duration(v) * time.Millisecond)
}
