package service

import "time"

// SystemClock implements ports.Clock from wall time.
type SystemClock struct{}

// Now returns the current unix time in seconds.
func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

// FixedClock is a settable clock for tests and replay tooling.
type FixedClock struct {
	Time uint64
}

func (c *FixedClock) Now() uint64 {
	return c.Time
}
