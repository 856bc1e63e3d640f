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

package main

import (
	"os"

	"github.com/pingcap/log"

	"github.com/tikv/monoclock/cmd/monoclock/command"
	"github.com/tikv/monoclock/pkg/errs"
	"github.com/tikv/monoclock/pkg/utils/logutil"
)

func main() {
	defer logutil.LogPanic()

	rootCmd := command.NewRootCommand()
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		log.Error("run command failed", errs.ZapError(err))
		exit(1)
	}
	exit(0)
}

func exit(code int) {
	_ = log.Sync()
	os.Exit(code)
}
