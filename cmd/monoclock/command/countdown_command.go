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

	"github.com/spf13/cobra"

	"github.com/pingcap/errors"

	"github.com/tikv/monoclock/pkg/monoclock"
)

const (
	defaultCountdownFrom = 10
	// maxCountdownFrom keeps the elapsed milliseconds within int16.
	maxCountdownFrom = math.MaxInt16 / 1000
)

// NewCountdownCommand returns a countdown subcommand of rootCmd
func NewCountdownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "count down one number per second",
		Args:  cobra.NoArgs,
		RunE:  countdownCommandFunc,
	}
	cmd.Flags().Int("from", defaultCountdownFrom, "the number to count down from")
	return cmd
}

func countdownCommandFunc(cmd *cobra.Command, _ []string) error {
	from, err := cmd.Flags().GetInt("from")
	if err != nil {
		return errors.Trace(err)
	}
	if from <= 0 || from > maxCountdownFrom {
		return errors.Errorf("countdown must start within [1, %d], got %d", maxCountdownFrom, from)
	}
	c, err := newClock()
	if err != nil {
		return err
	}
	defer c.Close()
	countdown(cmd, c, from)
	return nil
}

// countdown prints from, from-1, ..., 1, one per second since the first
// reading, sleeping in u16 milliseconds between them.
func countdown(cmd *cobra.Command, c *monoclock.Clock, from int) {
	start := c.Time()
	for seconds := 0; ; {
		wait := 0
		if passed, ok := c.Time().DeltaMSU16(start); ok && passed <= math.MaxInt16 {
			wait = max(0, seconds*1000-int(passed))
		}
		if wait > 0 {
			c.SleepMSU16(uint16(wait))
			continue
		}
		if seconds == from {
			return
		}
		cmd.Printf("%d!\n", from-seconds)
		seconds++
	}
}
