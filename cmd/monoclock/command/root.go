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
	"github.com/spf13/pflag"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"

	"github.com/tikv/monoclock/pkg/config"
	"github.com/tikv/monoclock/pkg/monoclock"
	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

// cfg is filled by the root command before any subcommand runs.
var cfg *config.Config

// NewRootCommand returns the monoclock root command with all subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "monoclock",
		Short:             "Monotonic clock tools",
		SilenceUsage:      true,
		PersistentPreRunE: setupCommandFunc,
	}
	addFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(
		NewCountdownCommand(),
		NewEnsureCommand(),
		NewNowCommand(),
		NewSleepCommand(),
		NewLapCommand(),
	)
	return rootCmd
}

func addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringP("config", "c", "", "config file")
	flagSet.String("platform", "", "clock platform, host or pit")
	flagSet.StringP("width", "w", "", "result width, one of u8, u16, u32, u64, u128")
	flagSet.StringP("log-level", "L", "", "log level: debug, info, warn, error, fatal (default 'info')")
	flagSet.String("log-file", "", "log file path")
	flagSet.Uint16("pit-divisor", 0, "interval timer divisor of the pit platform")
	flagSet.Int("spin-count", 0, "pause hints per busy-wait iteration of the pit platform")
}

func setupCommandFunc(cmd *cobra.Command, _ []string) error {
	c := config.NewConfig()
	if err := c.Parse(cmd.Flags()); err != nil {
		return err
	}
	if err := c.SetupLogger(); err != nil {
		return err
	}
	log.ReplaceGlobals(c.Logger, c.LogProps)
	for _, msg := range c.WarningMsgs {
		log.Warn(msg)
	}
	cfg = c
	return nil
}

// newClock creates the Clock of the configured platform. The caller must
// close it.
func newClock() (*monoclock.Clock, error) {
	p, err := cfg.NewPlatform()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return monoclock.New(p), nil
}

// widthRunner runs a command body in one of the five widths.
type widthRunner struct {
	u8   func() error
	u16  func() error
	u32  func() error
	u64  func() error
	u128 func() error
}

func (r widthRunner) run(width string) error {
	switch width {
	case widthutil.U8.Name():
		return r.u8()
	case widthutil.U16.Name():
		return r.u16()
	case widthutil.U32.Name():
		return r.u32()
	case widthutil.U64.Name():
		return r.u64()
	default:
		return r.u128()
	}
}
