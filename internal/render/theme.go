package render

// Theme defines the colors used when styling a line. Color values are passed
// to lipgloss verbatim, so both ANSI palette indices ("5") and hex codes
// ("#DA70D6") work.
type Theme struct {
	// Time and Source emphasize the timestamp and file:line segments
	// independently of any severity color.
	Time   string
	Source string

	// Levels maps a severity label to its color. Lookup is case-sensitive
	// and exact; labels without an entry render without a severity color.
	Levels map[string]string
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	return Theme{
		Time:   "5", // magenta
		Source: "4", // blue
		Levels: map[string]string{
			"info":  "2", // green
			"warn":  "3", // yellow
			"error": "1", // red
			"debug": "6", // cyan
		},
	}
}
