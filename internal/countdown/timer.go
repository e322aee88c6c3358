// Package countdown runs the one-second tick loop behind sleepbar.
package countdown

import (
	"context"
	"time"

	"github.com/akyairhashvil/sleepbar/internal/config"
	"github.com/akyairhashvil/sleepbar/internal/interrupt"
	"github.com/akyairhashvil/sleepbar/internal/models"
)

// Renderer receives the events of a run.
type Renderer interface {
	Header(total int64, start, eta time.Time)
	Tick(p models.Progress)
	Finish(total int64)
	Interrupted(p models.Progress)
}

// Timer counts from zero to a target, one tick per interval.
type Timer struct {
	clock    Clock
	source   interrupt.Source
	render   Renderer
	interval time.Duration
}

// New returns a Timer. A nil clock means SystemClock.
func New(clock Clock, source interrupt.Source, render Renderer) *Timer {
	if clock == nil {
		clock = SystemClock
	}
	return &Timer{
		clock:    clock,
		source:   source,
		render:   render,
		interval: config.TickInterval,
	}
}

// Result summarizes a run.
type Result struct {
	Progress models.Progress
	Waits    int
}

// Run counts to total seconds, rendering after every tick. It returns an
// *InterruptedError (matching ErrInterrupted) as soon as the interrupt source
// fires or ctx is cancelled; no further ticks are rendered after that.
func (t *Timer) Run(ctx context.Context, total int64) (Result, error) {
	res := Result{Progress: models.Progress{Total: total}}

	start := t.clock.Now()
	t.render.Header(total, start, start.Add(time.Duration(total)*time.Second))

	for {
		t.render.Tick(res.Progress)
		if res.Progress.Done() {
			break
		}

		if t.stopped(ctx) {
			return res, t.interrupted(res.Progress)
		}
		t.wait(ctx)
		res.Waits++
		if t.stopped(ctx) {
			return res, t.interrupted(res.Progress)
		}

		res.Progress.Elapsed++
	}

	t.render.Finish(total)
	return res, nil
}

// wait blocks for one interval, returning early if the run is stopped.
func (t *Timer) wait(ctx context.Context) {
	select {
	case <-t.clock.After(t.interval):
	case <-t.source.Done():
	case <-ctx.Done():
	}
}

func (t *Timer) stopped(ctx context.Context) bool {
	return t.source.IsSet() || ctx.Err() != nil
}

func (t *Timer) interrupted(p models.Progress) error {
	t.render.Interrupted(p)
	return &InterruptedError{Elapsed: p.Elapsed, Total: p.Total}
}
