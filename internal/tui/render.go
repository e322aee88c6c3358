package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/akyairhashvil/sleepbar/internal/config"
	"github.com/akyairhashvil/sleepbar/internal/models"
	"github.com/akyairhashvil/sleepbar/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/x/ansi"
)

// Renderer draws a countdown to a terminal. Progress and status go to out,
// the interruption notice goes to errOut.
type Renderer struct {
	out       io.Writer
	errOut    io.Writer
	mode      models.RenderMode
	theme     Theme
	termWidth int
	bar       progress.Model

	pending   bool // a rewritable tick line is on screen without a newline
	lastWidth int
}

// NewRenderer builds a renderer for mode. termWidth is the terminal's column
// count, or 0 when out is not a terminal.
func NewRenderer(out, errOut io.Writer, mode models.RenderMode, termWidth int) *Renderer {
	theme := ThemeFor(mode.Color)
	bar := progress.New(
		progress.WithSolidFill(theme.BarFull),
		progress.WithoutPercentage(),
		progress.WithWidth(config.BarWidth),
	)
	bar.Full = '█'
	bar.Empty = '░'
	bar.EmptyColor = theme.BarEmpty
	return &Renderer{
		out:       out,
		errOut:    errOut,
		mode:      mode,
		theme:     theme,
		termWidth: termWidth,
		bar:       bar,
	}
}

// Header announces the countdown and when it will end.
func (r *Renderer) Header(total int64, start, eta time.Time) {
	title := fmt.Sprintf("Sleeping for %s...", Plural(total, "second"))
	line := fmt.Sprintf("%s %s", r.theme.Header.Render(title),
		r.theme.Dim.Render(fmt.Sprintf("start %s, ETA %s (%s)", FormatClock(start), FormatClock(eta), FormatSpan(start, eta))))
	r.write(r.out, line+"\n")
}

// Tick draws one progress update. Quiet mode draws nothing.
func (r *Renderer) Tick(p models.Progress) {
	if r.mode.Quiet {
		return
	}
	line := r.ProgressLine(p)
	if !r.mode.Overwrites() {
		r.write(r.out, line+"\n")
		return
	}
	r.write(r.out, "\r"+r.fit(line))
	r.pending = true
}

// Finish reports normal completion.
func (r *Renderer) Finish(total int64) {
	r.breakLine()
	r.write(r.out, r.theme.Done.Render("Done... Total time: "+FormatSeconds(total))+"\n")
}

// Interrupted reports an early stop at p.
func (r *Renderer) Interrupted(p models.Progress) {
	r.breakLine()
	r.write(r.errOut, fmt.Sprintf("Interrupted at %d/%d seconds.\n", p.Elapsed, p.Total))
}

// ProgressLine formats elapsed and remaining time followed by the bar and
// percentage.
func (r *Renderer) ProgressLine(p models.Progress) string {
	return fmt.Sprintf("Elapsed: %s | Remaining: %s %s %s",
		r.theme.Elapsed.Render(FormatSeconds(p.Elapsed)),
		r.theme.Remaining.Render(FormatSeconds(p.Remaining())),
		r.Bar(p),
		r.theme.Percent.Render(fmt.Sprintf("%3d%%", p.Percent())),
	)
}

// Bar renders config.BarWidth cells with the filled count rounded down.
func (r *Renderer) Bar(p models.Progress) string {
	filled := p.Filled(config.BarWidth)
	if !r.mode.Color {
		return "[" + strings.Repeat(config.BarFull, filled) + strings.Repeat(config.BarEmpty, config.BarWidth-filled) + "]"
	}
	// The bubbles bar rounds to the nearest cell; feeding it a whole cell
	// count keeps the floor semantics.
	return r.bar.ViewAs(float64(filled) / float64(config.BarWidth))
}

// fit keeps a rewritten line on one terminal row and blanks out whatever the
// previous, longer line left behind.
func (r *Renderer) fit(line string) string {
	if r.termWidth > 1 && ansi.StringWidth(line) >= r.termWidth {
		line = ansi.Truncate(line, r.termWidth-1, "")
	}
	w := ansi.StringWidth(line)
	if pad := r.lastWidth - w; pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	r.lastWidth = w
	return line
}

func (r *Renderer) breakLine() {
	if r.pending {
		r.write(r.out, "\n")
		r.pending = false
		r.lastWidth = 0
	}
}

func (r *Renderer) write(w io.Writer, s string) {
	_, err := io.WriteString(w, s)
	util.LogError("write output", err)
}
