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
	"github.com/spf13/cobra"

	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/monoclock"
	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

// NewSleepCommand returns a sleep subcommand of rootCmd
func NewSleepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sleep <milliseconds>",
		Short: "sleep in the configured width and show the measured delta",
		Args:  cobra.ExactArgs(1),
		RunE:  sleepCommandFunc,
	}
}

func sleepCommandFunc(cmd *cobra.Command, args []string) error {
	c, err := newClock()
	if err != nil {
		return err
	}
	defer c.Close()
	return widthRunner{
		u8:   func() error { return sleepIn(cmd, c, widthutil.U8, args[0]) },
		u16:  func() error { return sleepIn(cmd, c, widthutil.U16, args[0]) },
		u32:  func() error { return sleepIn(cmd, c, widthutil.U32, args[0]) },
		u64:  func() error { return sleepIn(cmd, c, widthutil.U64, args[0]) },
		u128: func() error { return sleepIn(cmd, c, widthutil.U128, args[0]) },
	}.run(cfg.Width)
}

func sleepIn[T any](cmd *cobra.Command, c *monoclock.Clock, w widthutil.Width[T], arg string) error {
	ms, err := w.Parse(arg)
	if err != nil {
		return errs.ErrParseValue.Wrap(err).GenWithStackByArgs(arg, w.Name())
	}
	start := c.Time()
	monoclock.Sleep(c, w, ms)
	elapsed, ok := monoclock.Delta(w, c.Time(), start)
	cmd.Printf("slept %s ms, measured %s\n", w.String(ms), formatDelta(w, elapsed, ok))
	return nil
}

func formatDelta[T any](w widthutil.Width[T], v T, ok bool) string {
	if !ok {
		return "overflow of " + w.Name()
	}
	return w.String(v) + " ms"
}
