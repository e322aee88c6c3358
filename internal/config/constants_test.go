package config

import "testing"

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if BarWidth != 20 {
		t.Fatalf("BarWidth = %d, want 20", BarWidth)
	}
	if MaxSeconds != 9223372036 {
		t.Fatalf("MaxSeconds = %d", MaxSeconds)
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if ExitSuccess != 0 || ExitUsage != 1 || ExitInterrupted != 130 {
		t.Fatalf("unexpected exit status constants")
	}
	if len(BarFull) != 1 || len(BarEmpty) != 1 {
		t.Fatalf("bar glyphs must be one cell wide")
	}
}
