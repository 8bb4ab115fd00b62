package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// UI writes human-oriented status lines, separate from command output.
type UI struct {
	out     io.Writer
	success *color.Color
	warning *color.Color
	heading *color.Color
}

// NewUI creates a UI writing to out.
func NewUI(out io.Writer, noColor bool) *UI {
	ui := &UI{
		out:     out,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		heading: color.New(color.FgCyan, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{ui.success, ui.warning, ui.heading} {
			c.DisableColor()
		}
	}
	return ui
}

// Success prints a success message.
func (ui *UI) Success(format string, args ...interface{}) {
	ui.success.Fprintf(ui.out, "✓ %s\n", fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (ui *UI) Warning(format string, args ...interface{}) {
	ui.warning.Fprintf(ui.out, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Heading writes a section heading to w.
func (ui *UI) Heading(w io.Writer, format string, args ...interface{}) {
	ui.heading.Fprintf(w, format+"\n", args...)
}
