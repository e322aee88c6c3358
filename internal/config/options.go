package config

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Options is the parsed command line.
type Options struct {
	Seconds     int64
	Multiline   bool
	Quiet       bool
	NoColor     bool
	ShowVersion bool
	ShowHelp    bool
}

// UsageError reports a missing or malformed command line.
type UsageError struct {
	Arg    string
	Reason string
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Arg != "" {
		return fmt.Sprintf("%s (got %q)", e.Reason, e.Arg)
	}
	return e.Reason
}

const errNotNonNegative = "<seconds> must be a non-negative integer"

func newFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}
	fs.BoolVar(&opts.Multiline, "multiline", false, "print a new line per tick instead of overwriting the current one")
	fs.BoolVarP(&opts.Quiet, "quiet", "q", false, "only print the header and the final message")
	fs.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&opts.ShowVersion, "version", false, "print version information and exit")
	fs.BoolVarP(&opts.ShowHelp, "help", "h", false, "show this help and exit")
	return fs
}

// Parse reads the duration and render flags from args (without the program
// name). Flags may appear before or after the duration; the first non-flag
// token is the duration and any further ones are ignored.
func Parse(args []string) (Options, error) {
	var opts Options
	if neg, ok := leadingNegative(args); ok {
		return opts, &UsageError{Arg: neg, Reason: errNotNonNegative}
	}

	fs := newFlagSet(&opts)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return opts, &UsageError{Reason: err.Error()}
	}
	if opts.ShowHelp || opts.ShowVersion {
		return opts, nil
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return opts, &UsageError{Reason: "missing <seconds> argument"}
	}
	n, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil || n < 0 {
		return opts, &UsageError{Arg: rest[0], Reason: errNotNonNegative}
	}
	if n > MaxSeconds {
		return opts, &UsageError{Arg: rest[0], Reason: fmt.Sprintf("<seconds> must be at most %d", MaxSeconds)}
	}
	opts.Seconds = n
	return opts, nil
}

// leadingNegative finds a negative integer given where the duration is
// expected. pflag would otherwise read it as a cluster of shorthand flags.
func leadingNegative(args []string) (string, bool) {
	for _, a := range args {
		if a == "--" {
			return "", false
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			return "", false
		}
		if _, err := strconv.ParseInt(a, 10, 64); err == nil {
			return a, true
		}
	}
	return "", false
}

// Synopsis returns the one-line usage for prog.
func Synopsis(prog string) string {
	return fmt.Sprintf("Usage: %s <seconds> [--multiline] [--quiet|-q] [--no-color]", prog)
}

// Usage returns the help text for prog.
func Usage(prog string) string {
	var opts Options
	fs := newFlagSet(&opts)
	var b strings.Builder
	b.WriteString(Synopsis(prog) + "\n\n")
	b.WriteString("Sleep for <seconds>, showing elapsed and remaining time.\n\n")
	b.WriteString("Flags:\n")
	b.WriteString(fs.FlagUsages())
	return b.String()
}
