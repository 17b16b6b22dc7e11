package testkit

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

var seamMu sync.Mutex

// Swap points target at replacement until the test ends. Used for id
// generators and build variables that packages expose as vars
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	prev := *target
	*target = replacement
	t.Cleanup(func() { *target = prev })
}

// Seq returns a generator yielding prefix-1, prefix-2, ... safe for concurrent use.
// Swap it in for uuid-backed ids to get predictable records
func Seq(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return prefix + "-" + strconv.FormatInt(n.Add(1), 10)
	}
}

// Serial holds a process-wide lock for the rest of the test so parallel tests
// touching the same seam or the root logger do not interleave
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
