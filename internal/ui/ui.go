// Package ui writes the human-facing status lines of a scaffold run:
// the intro/outro banner, step start and finish markers, warnings and the
// closing next-steps block.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes status lines to a terminal.
type Reporter struct {
	w io.Writer

	banner  *color.Color
	step    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	dim     *color.Color
}

// New returns a Reporter writing to w. noColor strips ANSI sequences.
func New(w io.Writer, noColor bool) *Reporter {
	r := &Reporter{
		w:       w,
		banner:  color.New(color.BgCyan, color.FgBlack, color.Bold),
		step:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		dim:     color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.banner, r.step, r.success, r.warn, r.fail, r.dim} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return r
}

// Intro prints the opening banner.
func (r *Reporter) Intro(title string) {
	fmt.Fprintf(r.w, "\n%s\n\n", r.banner.Sprintf(" %s ", title))
}

// Outro prints the closing banner.
func (r *Reporter) Outro(message string) {
	fmt.Fprintf(r.w, "\n%s\n", r.banner.Sprintf(" %s ", message))
}

// Start announces a step.
func (r *Reporter) Start(message string) {
	fmt.Fprintf(r.w, "%s %s\n", r.step.Sprint("◇"), message)
}

// Done marks a step as finished.
func (r *Reporter) Done(message string) {
	fmt.Fprintf(r.w, "%s %s\n", r.success.Sprint("✔"), message)
}

// Info prints a neutral detail line.
func (r *Reporter) Info(message string) {
	fmt.Fprintf(r.w, "  %s\n", r.dim.Sprint(message))
}

// Warn prints a non-fatal problem.
func (r *Reporter) Warn(message string) {
	fmt.Fprintf(r.w, "%s %s\n", r.warn.Sprint("▲"), r.warn.Sprint(message))
}

// Error prints a failure.
func (r *Reporter) Error(message string) {
	fmt.Fprintf(r.w, "%s %s\n", r.fail.Sprint("✖"), r.fail.Sprint(message))
}

// NextSteps prints the numbered commands the user should run next.
func (r *Reporter) NextSteps(commands []string) {
	if len(commands) == 0 {
		return
	}
	fmt.Fprintf(r.w, "\nNext steps:\n")
	for i, c := range commands {
		fmt.Fprintf(r.w, "  %d. %s\n", i+1, r.step.Sprint(c))
	}
}
