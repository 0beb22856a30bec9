package logging

import (
	"testing"

	"go.uber.org/zap/zaptest/observer"
)

// FilterMessage returns the observed entries whose message is exactly msg. It is a small
// convenience for tests asserting on logs captured by NewObservedTestLogger.
func FilterMessage(tb testing.TB, logs *observer.ObservedLogs, msg string) []observer.LoggedEntry {
	tb.Helper()
	return logs.FilterMessage(msg).All()
}
