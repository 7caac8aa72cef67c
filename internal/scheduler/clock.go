package scheduler

import "time"

// Clock abstracts time so sweeps are testable at fixed instants.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock is the production clock.
func SystemClock() Clock { return systemClock{} }
