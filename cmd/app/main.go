package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/sleepbar/internal/config"
	"github.com/akyairhashvil/sleepbar/internal/countdown"
	"github.com/akyairhashvil/sleepbar/internal/interrupt"
	"github.com/akyairhashvil/sleepbar/internal/models"
	"github.com/akyairhashvil/sleepbar/internal/tui"
	"github.com/akyairhashvil/sleepbar/internal/util"
)

// environment holds everything run touches outside the process.
type environment struct {
	stdout    io.Writer
	stderr    io.Writer
	clock     countdown.Clock
	source    interrupt.Source
	termWidth int  // 0 when stdout is not a terminal
	color     bool // stdout can take styled output
}

func main() {
	util.ConfigureLogging(os.Stderr)

	src := interrupt.NewSignalSource()
	code := run(context.Background(), os.Args[1:], environment{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clock:     countdown.SystemClock,
		source:    src,
		termWidth: util.TerminalWidth(os.Stdout),
		color:     util.ColorEnabled(os.Stdout),
	})
	src.Stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, env environment) int {
	opts, err := config.Parse(args)
	if err != nil {
		fmt.Fprintf(env.stderr, "Error: %v\n", err)
		fmt.Fprintln(env.stderr, config.Synopsis(config.AppName))
		return exitCode(err)
	}
	if opts.ShowHelp {
		fmt.Fprint(env.stdout, config.Usage(config.AppName))
		return config.ExitSuccess
	}
	if opts.ShowVersion {
		fmt.Fprintf(env.stdout, "%s %s\n", config.AppName, tui.VersionLabel())
		return config.ExitSuccess
	}

	// Without a handler Ctrl-C still kills the process, just less politely.
	if err := env.source.Install(); err != nil {
		util.LogError("install interrupt handler", err)
	}

	mode := models.RenderMode{
		Multiline: opts.Multiline,
		Quiet:     opts.Quiet,
		Color:     env.color && !opts.NoColor,
	}
	renderer := tui.NewRenderer(env.stdout, env.stderr, mode, env.termWidth)
	_, err = countdown.New(env.clock, env.source, renderer).Run(ctx, opts.Seconds)
	return exitCode(err)
}

// exitCode maps a run error to the process status. Anything that is not an
// interruption is a usage error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return config.ExitSuccess
	case errors.Is(err, countdown.ErrInterrupted):
		return config.ExitInterrupted
	default:
		return config.ExitUsage
	}
}
