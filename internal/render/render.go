package render

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ubesthelp/winstonjson/internal/record"
)

const levelWidth = 5

// Formatter renders decoded records as display lines. Styles are built once
// from a Theme; a Formatter with styling disabled emits the plain layouts.
type Formatter struct {
	styled bool
	time   lipgloss.Style
	source lipgloss.Style
	levels map[string]lipgloss.Style
	plain  lipgloss.Style
}

// New builds a Formatter from a theme. When styled is false every segment is
// rendered without color, which is also the deterministic path tests use.
func New(theme Theme, styled bool) *Formatter {
	f := &Formatter{
		styled: styled,
		plain:  lipgloss.NewStyle(),
	}
	if !styled {
		return f
	}
	f.time = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Time))
	f.source = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Source))
	f.levels = make(map[string]lipgloss.Style, len(theme.Levels))
	for label, color := range theme.Levels {
		f.levels[label] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return f
}

// Format produces the full display line for one record:
//
//	<time>|<level>|<file>:<line>: <message> <metadata>
//	<time>|<level>: <message> <metadata>
//
// The second layout is used when the record carries no source pair. The
// trailing metadata delimiter is always emitted, even when metadata is empty.
func (f *Formatter) Format(rec record.Record) string {
	ts := record.LocalTime(rec.Timestamp)
	level := centerPad(rec.Level, levelWidth)
	meta := rec.CompactMetadata()

	sev := f.severityStyle(rec.Level)
	var b strings.Builder
	b.WriteString(f.timeStyle().Render(ts))
	b.WriteString(sev.Render("|" + level))
	if rec.HasSource {
		b.WriteString(sev.Render("|"))
		b.WriteString(f.sourceStyle().Render(rec.SourceFile + ":" + strconv.Itoa(rec.SourceLine)))
	}
	b.WriteString(sev.Render(": " + rec.Message + " " + meta))
	return b.String()
}

// severityStyle resolves the style for a level label. Matching is exact:
// "INFO" is not "info"; unknown labels render unstyled.
func (f *Formatter) severityStyle(level string) lipgloss.Style {
	if style, ok := f.levels[level]; ok {
		return style
	}
	return f.plain
}

func (f *Formatter) timeStyle() lipgloss.Style {
	if f.styled {
		return f.time
	}
	return f.plain
}

func (f *Formatter) sourceStyle() lipgloss.Style {
	if f.styled {
		return f.source
	}
	return f.plain
}

// centerPad pads a label to width with spaces on both sides, the extra space
// going to the right. Longer labels are returned intact.
func centerPad(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
