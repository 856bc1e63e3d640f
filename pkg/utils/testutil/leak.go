// Copyright 2019 TiKV Project Authors.
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

package testutil

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
)

/*
support 2 ways to use this package:
1. use LeakOptions with goleak.VerifyTestMain in TestMain.
2. use RegisterLeakDetection to register before-and-after code to a test.
- can be more fine-grained than LeakOptions
- we need to add ignore options to interestingGoroutines() if we want to ignore some goroutines
(but we need to give a reason why we ignore it)
*/

// LeakOptions is used to filter the goroutines.
var LeakOptions = []goleak.Option{
	// natefinch/lumberjack#56, the file logger of pingcap/log never stops its mill goroutine.
	goleak.IgnoreTopFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
}

// RegisterLeakDetection is a convenient way to register before-and-after code to a test.
func RegisterLeakDetection(t *testing.T) {
	t.Cleanup(func() {
		if err := CheckAfterTest(time.Second); err != nil {
			t.Errorf("Test %v", err)
		}
	})
}

// CheckAfterTest returns an error when find leaked goroutines not in ignore list.
// Waits for go-routines shutdown for 'd'.
func CheckAfterTest(d time.Duration) error {
	var stacks string
	begin := time.Now()
	for time.Since(begin) < d {
		goroutines := interestingGoroutines()
		if len(goroutines) == 0 {
			return nil
		}
		stacks = strings.Join(goroutines, "\n\n")

		// Undesired goroutines found, but goroutines might just still be
		// shutting down, so give it some time.
		runtime.Gosched()
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("appears to have leaked %s", stacks)
}

// Some goroutines are known to leak, so ignore them.
func interestingGoroutines() (gs []string) {
	buf := make([]byte, 2<<20)
	buf = buf[:runtime.Stack(buf, true)]
	for _, g := range strings.Split(string(buf), "\n\n") {
		sl := strings.SplitN(g, "\n", 2)
		if len(sl) != 2 {
			continue
		}
		stack := strings.TrimSpace(sl[1])
		if stack == "" ||
			strings.Contains(stack, "interestingGoroutines") ||
			strings.Contains(stack, "gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun") ||
			strings.Contains(stack, "testing.(*T).Run") ||
			strings.Contains(stack, "testing.(*M).") ||
			strings.Contains(stack, "os/signal.signal_recv") {
			continue
		}
		gs = append(gs, stack)
	}
	sort.Strings(gs)
	return gs
}
