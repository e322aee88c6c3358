package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/akyairhashvil/sleepbar/internal/models"
)

// FakeClock is a Clock whose waits complete immediately and advance Now.
type FakeClock struct {
	mu    sync.Mutex
	now   time.Time
	waits int
	hold  map[int]bool
	// OnWait runs with the 1-based number of each wait before it completes.
	OnWait func(n int)
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now, hold: map[int]bool{}}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.waits++
	n := c.waits
	held := c.hold[n]
	if !held {
		c.now = c.now.Add(d)
	}
	now := c.now
	hook := c.OnWait
	c.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	ch := make(chan time.Time, 1)
	if !held {
		ch <- now
	}
	return ch
}

// Hold makes wait n never complete on its own, so only an interrupt can
// end it.
func (c *FakeClock) Hold(n int) *FakeClock {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hold[n] = true
	return c
}

// Waits returns how many waits have started.
func (c *FakeClock) Waits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waits
}

// Recorder is a countdown renderer that keeps a log of events.
type Recorder struct {
	Events []string
	Ticks  []models.Progress
}

func (r *Recorder) Header(total int64, start, eta time.Time) {
	r.Events = append(r.Events, fmt.Sprintf("header %d %s", total, eta.Sub(start)))
}

func (r *Recorder) Tick(p models.Progress) {
	r.Ticks = append(r.Ticks, p)
	r.Events = append(r.Events, fmt.Sprintf("tick %d/%d", p.Elapsed, p.Total))
}

func (r *Recorder) Finish(total int64) {
	r.Events = append(r.Events, fmt.Sprintf("finish %d", total))
}

func (r *Recorder) Interrupted(p models.Progress) {
	r.Events = append(r.Events, fmt.Sprintf("interrupted %d/%d", p.Elapsed, p.Total))
}
