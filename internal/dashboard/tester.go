package dashboard

import "math/rand/v2"

// ConnectionTester simulates a Discord connection check.
type ConnectionTester struct {
	float func() float64
}

// NewConnectionTester returns a tester drawing from float. A nil float uses
// the global random source.
func NewConnectionTester(float func() float64) *ConnectionTester {
	if float == nil {
		float = rand.Float64
	}
	return &ConnectionTester{float: float}
}

// Test reports whether the simulated connection succeeded.
func (t *ConnectionTester) Test() bool {
	return t.float() > 0.5
}

// ConnectionResultText returns the notification body for a test result.
func ConnectionResultText(ok bool) string {
	if ok {
		return "Connection succeeded!"
	}
	return "Connection error"
}
