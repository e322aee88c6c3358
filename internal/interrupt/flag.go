// Package interrupt turns the user's interrupt gesture (Ctrl-C) into a
// set-once flag that a polling loop can check between waits.
package interrupt

import (
	"sync"
	"sync/atomic"
)

// Source reports whether the user asked the process to stop.
//
// Install arms the source. IsSet is the authoritative check. Done is closed
// once IsSet turns true, so a blocking wait can wake up early and re-check.
type Source interface {
	Install() error
	IsSet() bool
	Done() <-chan struct{}
}

// Flag is a set-once, never-cleared interrupt flag. It is safe to Set from
// one goroutine while another reads it.
type Flag struct {
	set  atomic.Bool
	once sync.Once
	done chan struct{}
}

// NewFlag returns an unset flag.
func NewFlag() *Flag {
	return &Flag{done: make(chan struct{})}
}

// Install is a no-op; a bare Flag is raised by calling Set.
func (f *Flag) Install() error { return nil }

// Set raises the flag. Calls after the first have no effect.
func (f *Flag) Set() {
	f.once.Do(func() {
		f.set.Store(true)
		close(f.done)
	})
}

func (f *Flag) IsSet() bool {
	return f.set.Load()
}

func (f *Flag) Done() <-chan struct{} {
	return f.done
}
