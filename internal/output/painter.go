package output

import (
	"io"
	"os"
	"strings"

	"rulesummary/internal/rules"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// StatusPainter renders status words and group headers for the text summary.
type StatusPainter interface {
	Status(s *rules.Status) string
	Header(text string) string
}

// PlainPainter renders bare text.
type PlainPainter struct{}

func (PlainPainter) Status(s *rules.Status) string { return rules.StatusText(s) }
func (PlainPainter) Header(text string) string     { return text }

// ColorPainter renders statuses with ANSI colors. Color state lives on each
// painter; the fatih/color package-level NoColor switch is never consulted.
type ColorPainter struct {
	pass    *color.Color
	fail    *color.Color
	skip    *color.Color
	unknown *color.Color
	header  *color.Color
}

func NewColorPainter(enabled bool) *ColorPainter {
	p := &ColorPainter{
		pass:    color.New(color.FgGreen),
		fail:    color.New(color.FgRed, color.Bold),
		skip:    color.New(color.FgYellow, color.Bold),
		unknown: color.New(color.Faint),
		header:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.pass, p.fail, p.skip, p.unknown, p.header} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *ColorPainter) Status(s *rules.Status) string {
	text := rules.StatusText(s)
	if s == nil {
		return p.unknown.Sprint(text)
	}
	switch *s {
	case rules.StatusPass:
		return p.pass.Sprint(text)
	case rules.StatusFail:
		return p.fail.Sprint(text)
	case rules.StatusSkip:
		return p.skip.Sprint(text)
	}
	return text
}

func (p *ColorPainter) Header(text string) string {
	return p.header.Sprint(text)
}

// ColorEnabled resolves a --color mode for a writer.
// "always" and "never" are absolute; "auto" colors only terminals and honors NO_COLOR.
func ColorEnabled(mode string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
