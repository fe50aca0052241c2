package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/ubesthelp/winstonjson/internal/config"
	"github.com/ubesthelp/winstonjson/internal/linesource"
	"github.com/ubesthelp/winstonjson/internal/record"
	"github.com/ubesthelp/winstonjson/internal/render"
)

// Options configure one formatting run.
type Options struct {
	Path       string
	ThemePath  string // empty uses the default ~/.config/winstonjson/theme.toml
	ForceColor bool
	Out        io.Writer // nil uses os.Stdout
}

// Run streams the file at opts.Path onto opts.Out, one output line per input
// line, in input order. Lines that decode as records are reformatted and
// colorized; everything else passes through verbatim.
func Run(opts Options) error {
	theme, err := config.Load(opts.ThemePath)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	styled := opts.ForceColor
	if !styled {
		if file, ok := out.(*os.File); ok {
			styled = isatty.IsTerminal(file.Fd())
		}
	}
	if opts.ForceColor {
		// lipgloss degrades to no color on non-terminal output unless told
		// otherwise.
		lipgloss.SetColorProfile(termenv.ANSI)
	}

	src, err := linesource.Open(opts.Path)
	if err != nil {
		// An unopenable input ends the run silently with no output.
		return nil
	}
	defer src.Close()

	formatter := render.New(theme, styled)
	for src.Next() {
		line := src.Text()
		if rec, ok := record.Decode(line); ok {
			fmt.Fprintln(out, formatter.Format(rec))
		} else {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
