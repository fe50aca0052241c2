// Package config loads the optional theme file controlling output colors.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided (the -theme flag), use it
//  2. Otherwise, use ~/.config/winstonjson/theme.toml (default)
//  3. If the file doesn't exist, fall back to the built-in theme
//  4. If the file exists but entries are missing/empty, keep the defaults
//     for those entries
//
// # TOML Format
//
// Example theme.toml:
//
//	time = "5"
//	source = "#6495ED"
//
//	[levels]
//	error = "9"
//	trace = "8"
//
// Every entry is optional. Colors are handed to lipgloss verbatim, so ANSI
// palette indices and hex codes both work. Level entries for labels the
// built-in theme does not know extend the severity table; adding a color for
// a new label is a data change, not a code change.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors other
// than os.ErrNotExist, and TOML parse errors. A missing theme file is NOT an
// error - the tool works out-of-the-box with no configuration present.
package config
