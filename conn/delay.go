package conn

import "time"

// Sleeper is a delay source backed by the Go scheduler. Delays are minimums.
type Sleeper struct{}

func (Sleeper) DelayMicroseconds(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

func (Sleeper) DelayMilliseconds(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
