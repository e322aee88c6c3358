package countdown

import "time"

//go:generate mockgen -source=clock.go -destination=mock_clock_test.go -package=countdown

// Clock abstracts the wall clock and the one-second wait so runs can be
// driven deterministically.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// SystemClock is the default clock implementation.
var SystemClock Clock = realClock{}
