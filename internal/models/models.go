package models

// Progress is the state of a countdown: how far along it is out of Total
// seconds. Elapsed only moves forward, one tick at a time.
type Progress struct {
	Elapsed int64
	Total   int64
}

// Remaining returns the seconds left.
func (p Progress) Remaining() int64 {
	return p.Total - p.Elapsed
}

// Done reports whether the countdown has reached its target.
func (p Progress) Done() bool {
	return p.Elapsed >= p.Total
}

// Percent returns the completion rounded to a whole percentage.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 100
	}
	e := p.clamped()
	return int((e*200 + p.Total) / (2 * p.Total))
}

// Filled returns how many of width bar cells are filled, rounding down.
// Integer arithmetic keeps exact multiples from landing one cell short.
func (p Progress) Filled(width int) int {
	if width <= 0 {
		return 0
	}
	if p.Total <= 0 {
		return width
	}
	return int(p.clamped() * int64(width) / p.Total)
}

func (p Progress) clamped() int64 {
	if p.Elapsed < 0 {
		return 0
	}
	if p.Elapsed > p.Total {
		return p.Total
	}
	return p.Elapsed
}

// RenderMode selects how progress is drawn. It is fixed for a whole run.
type RenderMode struct {
	Multiline bool // append a line per tick instead of rewriting one line
	Quiet     bool // header and final message only
	Color     bool
}

// Overwrites reports whether ticks are drawn in place on a single line.
func (m RenderMode) Overwrites() bool {
	return !m.Multiline && !m.Quiet
}
