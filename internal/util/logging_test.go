package util

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"
)

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	ConfigureLogging(&buf)
	defer log.SetOutput(os.Stderr)

	LogError("write output", nil)
	if buf.Len() != 0 {
		t.Fatalf("nil error should not log, got %q", buf.String())
	}
	LogError("write output", errors.New("broken pipe"))
	if got, want := buf.String(), "sleepbar: write output: broken pipe\n"; got != want {
		t.Fatalf("log = %q, want %q", got, want)
	}
}
