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
)

const ensureSleepMillis = 100

// NewEnsureCommand returns an ensure subcommand of rootCmd
func NewEnsureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure",
		Short: "create a clock, read it once and sleep 100ms",
		Args:  cobra.NoArgs,
		RunE:  ensureCommandFunc,
	}
}

func ensureCommandFunc(cmd *cobra.Command, _ []string) error {
	c, err := newClock()
	if err != nil {
		return err
	}
	defer c.Close()
	_ = c.Time()
	c.SleepMSU8(ensureSleepMillis)
	cmd.Println("ok")
	return nil
}
