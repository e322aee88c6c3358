package models

import "testing"

func TestProgressRemaining(t *testing.T) {
	p := Progress{Elapsed: 2, Total: 5}
	if p.Remaining() != 3 {
		t.Fatalf("Remaining() = %d, want 3", p.Remaining())
	}
	if p.Done() {
		t.Fatalf("2/5 should not be done")
	}
	if !(Progress{Elapsed: 5, Total: 5}).Done() {
		t.Fatalf("5/5 should be done")
	}
}

func TestProgressZeroTotalIsComplete(t *testing.T) {
	p := Progress{}
	if p.Percent() != 100 {
		t.Fatalf("Percent() = %d, want 100", p.Percent())
	}
	if p.Filled(20) != 20 {
		t.Fatalf("Filled(20) = %d, want 20", p.Filled(20))
	}
	if p.Remaining() != 0 || !p.Done() {
		t.Fatalf("zero countdown should be done with nothing remaining")
	}
}

func TestProgressFilledFloors(t *testing.T) {
	tests := []struct {
		elapsed, total int64
		want           int
	}{
		{0, 3, 0},
		{1, 3, 6},  // 6.67
		{2, 3, 13}, // 13.33
		{3, 3, 20},
		{1, 40, 0}, // 0.5
		{39, 40, 19},
	}
	for _, tt := range tests {
		got := Progress{Elapsed: tt.elapsed, Total: tt.total}.Filled(20)
		if got != tt.want {
			t.Fatalf("Filled(%d/%d) = %d, want %d", tt.elapsed, tt.total, got, tt.want)
		}
	}
}

func TestProgressFilledMonotonic(t *testing.T) {
	for _, total := range []int64{1, 7, 19, 20, 21, 137} {
		prev := -1
		for e := int64(0); e <= total; e++ {
			got := Progress{Elapsed: e, Total: total}.Filled(20)
			if got < prev {
				t.Fatalf("fill decreased at %d/%d: %d < %d", e, total, got, prev)
			}
			prev = got
		}
		if prev != 20 {
			t.Fatalf("fill at %d/%d = %d, want 20", total, total, prev)
		}
	}
}

func TestProgressPercentRounds(t *testing.T) {
	if got := (Progress{Elapsed: 1, Total: 3}).Percent(); got != 33 {
		t.Fatalf("Percent(1/3) = %d, want 33", got)
	}
	if got := (Progress{Elapsed: 2, Total: 3}).Percent(); got != 67 {
		t.Fatalf("Percent(2/3) = %d, want 67", got)
	}
	if got := (Progress{Elapsed: 0, Total: 9}).Percent(); got != 0 {
		t.Fatalf("Percent(0/9) = %d, want 0", got)
	}
}

func TestProgressFilledNonPositiveWidth(t *testing.T) {
	if got := (Progress{Elapsed: 1, Total: 1}).Filled(0); got != 0 {
		t.Fatalf("Filled(0) = %d, want 0", got)
	}
}

func TestRenderModeOverwrites(t *testing.T) {
	if !(RenderMode{}).Overwrites() {
		t.Fatalf("default mode should overwrite")
	}
	if (RenderMode{Multiline: true}).Overwrites() {
		t.Fatalf("multiline should not overwrite")
	}
	if (RenderMode{Quiet: true}).Overwrites() {
		t.Fatalf("quiet draws no tick line")
	}
}
