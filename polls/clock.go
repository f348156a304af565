// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import "time"

// Clock supplies the current time to predicates and the service.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Used in tests and replays.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}
