// Package output renders requests and response envelopes for the
// terminal.
package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Scheme holds the colors used for the different output elements.
type Scheme struct {
	Method      *color.Color
	URL         *color.Color
	StatusOK    *color.Color
	StatusWarn  *color.Color
	StatusError *color.Color
	HeaderKey   *color.Color
}

// NewScheme returns the color scheme, with all colors disabled when
// noColor is set or stdout is not a terminal.
func NewScheme(noColor bool) *Scheme {
	s := &Scheme{
		Method:      color.New(color.FgBlue, color.Bold),
		URL:         color.New(color.FgCyan),
		StatusOK:    color.New(color.FgGreen, color.Bold),
		StatusWarn:  color.New(color.FgYellow, color.Bold),
		StatusError: color.New(color.FgRed, color.Bold),
		HeaderKey:   color.New(color.FgYellow),
	}
	if noColor || !terminal() {
		s.Method.DisableColor()
		s.URL.DisableColor()
		s.StatusOK.DisableColor()
		s.StatusWarn.DisableColor()
		s.StatusError.DisableColor()
		s.HeaderKey.DisableColor()
	}
	return s
}

func terminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
