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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tikv/monoclock/pkg/utils/testutil"
	"github.com/tikv/monoclock/pkg/utils/widthutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, testutil.LeakOptions...)
}

func execute(args ...string) (string, error) {
	rootCmd := NewRootCommand()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--log-level=error"))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestEnsure(t *testing.T) {
	re := require.New(t)
	output, err := execute("ensure")
	re.NoError(err)
	re.Contains(output, "ok")

	output, err = execute("ensure", "--platform=pit")
	re.NoError(err)
	re.Contains(output, "ok")
}

func TestCountdown(t *testing.T) {
	testutil.RegisterLeakDetection(t)
	re := require.New(t)
	output, err := execute("countdown", "--from=1")
	re.NoError(err)
	re.Equal("1!\n", output)

	_, err = execute("countdown", "--from=0")
	re.Error(err)
	_, err = execute("countdown", "--from=33")
	re.Error(err)
}

func TestSleep(t *testing.T) {
	re := require.New(t)
	for _, width := range []string{"u8", "u16", "u32", "u64", "u128"} {
		output, err := execute("sleep", "20", "--width="+width)
		re.NoError(err, width)
		re.True(strings.HasPrefix(output, "slept 20 ms, measured "), output)
	}

	_, err := execute("sleep", "256", "--width=u8")
	re.Error(err)
	_, err = execute("sleep", "abc")
	re.Error(err)
	_, err = execute("sleep", "20", "--width=u7")
	re.Error(err)
	_, err = execute("sleep", "20", "--platform=dos")
	re.Error(err)
}

func TestLap(t *testing.T) {
	re := require.New(t)
	output, err := execute("lap", "3", "10", "--width=u16")
	re.NoError(err)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	re.Len(lines, 3)
	for i, line := range lines {
		re.True(strings.HasPrefix(line, fmt.Sprintf("lap %d: ", i+1)), line)
	}

	_, err = execute("lap", "0", "10")
	re.Error(err)
}

func TestNow(t *testing.T) {
	re := require.New(t)
	output, err := execute("now")
	re.NoError(err)
	re.Contains(output, " ms (")
}

func TestConfigFile(t *testing.T) {
	re := require.New(t)
	file := filepath.Join(t.TempDir(), "monoclock.toml")
	re.NoError(os.WriteFile(file, []byte(`
platform = "pit"
width = "u32"

[pit]
divisor = 1193
`), 0o600))
	output, err := execute("sleep", "5", "--config="+file)
	re.NoError(err)
	re.True(strings.HasPrefix(output, "slept 5 ms, measured "), output)
	re.Equal("pit", cfg.Platform)
	re.Equal(uint16(1193), cfg.PIT.Divisor)
}

func TestHumanMillis(t *testing.T) {
	re := require.New(t)
	re.Equal("Less than a second", humanMillis(widthutil.NewUint128(0, 999)))
	re.Equal("2 minutes", humanMillis(widthutil.NewUint128(0, 120_000)))
	re.Equal("forever", humanMillis(widthutil.U128.Max()))
}
