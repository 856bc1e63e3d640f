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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/monoclock"
	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

// NewLapCommand returns a lap subcommand of rootCmd
func NewLapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lap <count> <interval>",
		Short: "take count stopwatch laps, sleeping interval milliseconds before each",
		Args:  cobra.ExactArgs(2),
		RunE:  lapCommandFunc,
	}
}

func lapCommandFunc(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil || count <= 0 {
		return errs.ErrParseValue.GenWithStackByArgs(args[0], "lap count")
	}
	c, err := newClock()
	if err != nil {
		return err
	}
	defer c.Close()
	return widthRunner{
		u8:   func() error { return laps(cmd, c, widthutil.U8, count, args[1]) },
		u16:  func() error { return laps(cmd, c, widthutil.U16, count, args[1]) },
		u32:  func() error { return laps(cmd, c, widthutil.U32, count, args[1]) },
		u64:  func() error { return laps(cmd, c, widthutil.U64, count, args[1]) },
		u128: func() error { return laps(cmd, c, widthutil.U128, count, args[1]) },
	}.run(cfg.Width)
}

func laps[T any](cmd *cobra.Command, c *monoclock.Clock, w widthutil.Width[T], count int, arg string) error {
	interval, err := w.Parse(arg)
	if err != nil {
		return errs.ErrParseValue.Wrap(err).GenWithStackByArgs(arg, w.Name())
	}
	ts := c.Time()
	for i := 1; i <= count; i++ {
		monoclock.Sleep(c, w, interval)
		lap, ok := monoclock.Split(w, &ts)
		cmd.Printf("lap %d: %s\n", i, formatDelta(w, lap, ok))
	}
	return nil
}
