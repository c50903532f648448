package testutil

import (
	"testing"
	"time"
)

// Eventually polls cond every interval and fails the test with the
// formatted message if it is still false after timeout.
func Eventually(t testing.TB, timeout, interval time.Duration, cond func() bool, format string, args ...any) {
	t.Helper()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for !cond() {
		select {
		case <-timer.C:
			if format == "" {
				format = "condition not met within %s"
				args = []any{timeout}
			}
			t.Fatalf(format, args...)
			return
		case <-ticker.C:
		}
	}
}
