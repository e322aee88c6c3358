package countdown

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned when the user interrupts a run.
var ErrInterrupted = errors.New("interrupted")

// InterruptedError records how far a run got before it was interrupted.
type InterruptedError struct {
	Elapsed int64
	Total   int64
}

func (e *InterruptedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("interrupted at %d/%d seconds", e.Elapsed, e.Total)
}

func (e *InterruptedError) Unwrap() error { return ErrInterrupted }
