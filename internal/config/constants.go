package config

import (
	"math"
	"time"
)

// Timer settings.
const (
	TickInterval = time.Second
	BarWidth     = 20

	// MaxSeconds is the longest countdown whose ETA fits in a time.Duration.
	MaxSeconds = math.MaxInt64 / int64(time.Second)
)

// Exit statuses. Signal-based exits follow the shell convention of 128 + signo.
const (
	ExitSuccess     = 0
	ExitUsage       = 1
	ExitInterrupted = 130
)

// Display settings.
const (
	AppName = "sleepbar"

	// ClockLayout formats wall-clock times in the header.
	ClockLayout = "15:04:05"

	// BarFull and BarEmpty draw the plain-text bar.
	BarFull  = "#"
	BarEmpty = "-"

	// NoColorEnv disables color when set to any value (https://no-color.org).
	NoColorEnv = "NO_COLOR"
)
