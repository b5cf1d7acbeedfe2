package helpers

import "time"

// -----------------------------------------------------------------------------
// SystemClock implements IClock. The trade server clock is modeled as UTC
// plus a fixed offset; the local clock is the machine wall clock.
// -----------------------------------------------------------------------------

type SystemClock struct {
	ServerOffset time.Duration
}

// -----------------------------------------------------------------------------

func NewSystemClock(serverOffset time.Duration) *SystemClock {
	return &SystemClock{ServerOffset: serverOffset}
}

// -----------------------------------------------------------------------------

// ServerNow returns the trade server's current time.
func (c *SystemClock) ServerNow() time.Time {
	return time.Now().UTC().Add(c.ServerOffset)
}

// -----------------------------------------------------------------------------

// LocalNow returns the local machine's current time.
func (c *SystemClock) LocalNow() time.Time {
	return time.Now()
}
