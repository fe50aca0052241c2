package render

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ubesthelp/winstonjson/internal/record"
)

func plainFormatter() *Formatter {
	return New(DefaultTheme(), false)
}

func TestFormat_WithoutSource(t *testing.T) {
	rec := record.Record{Level: "error", Message: "boom", Timestamp: "t"}
	got := plainFormatter().Format(rec)
	if want := "t|error: boom "; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormat_WithSource(t *testing.T) {
	rec := record.Record{
		Level:      "warn",
		Message:    "disk almost full",
		Timestamp:  "t",
		SourceFile: "store.go",
		SourceLine: 128,
		HasSource:  true,
	}
	got := plainFormatter().Format(rec)
	if want := "t|warn |store.go:128: disk almost full "; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormat_WithMetadata(t *testing.T) {
	rec := record.Record{
		Level:     "info",
		Message:   "request done",
		Timestamp: "t",
		Metadata:  json.RawMessage(`{"status": 200, "ms": 12}`),
	}
	got := plainFormatter().Format(rec)
	if want := `t|info : request done {"status":200,"ms":12}`; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormat_ConvertsParseableTimestamp(t *testing.T) {
	oldLocal := time.Local
	time.Local = time.FixedZone("TestLocal", 2*60*60)
	defer func() {
		time.Local = oldLocal
	}()

	rec := record.Record{Level: "info", Message: "up", Timestamp: "2024-03-01T10:00:00Z"}
	got := plainFormatter().Format(rec)
	if want := "2024-03-01T12:00:00.000+02:00|info : up "; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func severityColor(f *Formatter, level string) (string, bool) {
	color, ok := f.severityStyle(level).GetForeground().(lipgloss.Color)
	return string(color), ok
}

func TestSeverityStyle_KnownLevels(t *testing.T) {
	f := New(DefaultTheme(), true)
	cases := map[string]string{
		"info":  "2",
		"warn":  "3",
		"error": "1",
		"debug": "6",
	}
	for level, want := range cases {
		got, ok := severityColor(f, level)
		if !ok {
			t.Fatalf("severityStyle(%q) has no foreground, want one", level)
		}
		if got != want {
			t.Fatalf("severityStyle(%q) foreground = %q, want %q", level, got, want)
		}
	}
}

func TestSeverityStyle_UnknownAndCaseSensitive(t *testing.T) {
	f := New(DefaultTheme(), true)
	for _, level := range []string{"INFO", "Error", "trace", "fatal", ""} {
		if _, ok := severityColor(f, level); ok {
			t.Fatalf("severityStyle(%q) has a foreground, want none", level)
		}
	}
}

func TestCenterPad(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "     "},
		{"ok", " ok  "},
		{"abc", " abc "},
		{"info", "info "},
		{"error", "error"},
		{"verbose", "verbose"},
	}
	for _, tc := range cases {
		if got := centerPad(tc.in, levelWidth); got != tc.want {
			t.Fatalf("centerPad(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
