package record

import (
	"bytes"
	"encoding/json"
	"time"
)

const displayTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is one decoded log entry. Fields are fixed at decode time; a record
// lives for exactly one input line.
type Record struct {
	Level     string
	Message   string
	Timestamp string

	// SourceFile and SourceLine are meaningful only when HasSource is true.
	SourceFile string
	SourceLine int
	HasSource  bool

	// Metadata holds the raw JSON of the optional metadata member, or nil.
	Metadata json.RawMessage
}

// Decode attempts to interpret one line as a log record. The second return
// value reports whether the line decoded; a false result is not an error, the
// caller is expected to fall back to printing the line verbatim.
//
// A line decodes only when it is a JSON object carrying string-typed level,
// message and timestamp members. The file, line and metadata members are
// optional; a wrong type on any member fails the whole decode.
func Decode(line string) (Record, bool) {
	var raw struct {
		Level     *string         `json:"level"`
		Message   *string         `json:"message"`
		Timestamp *string         `json:"timestamp"`
		File      *string         `json:"file"`
		Line      *int            `json:"line"`
		Metadata  json.RawMessage `json:"metadata"`
	}
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Record{}, false
	}
	if raw.Level == nil || raw.Message == nil || raw.Timestamp == nil {
		return Record{}, false
	}

	rec := Record{
		Level:     *raw.Level,
		Message:   *raw.Message,
		Timestamp: *raw.Timestamp,
	}
	if raw.File != nil && raw.Line != nil {
		rec.SourceFile = *raw.File
		rec.SourceLine = *raw.Line
		rec.HasSource = true
	}
	if len(raw.Metadata) > 0 && !bytes.Equal(raw.Metadata, []byte("null")) {
		rec.Metadata = raw.Metadata
	}
	return rec, true
}

// LocalTime converts an RFC3339 timestamp to the host zone and renders it at
// millisecond precision. Values that do not parse come back unchanged.
func LocalTime(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.In(time.Local).Format(displayTimeLayout)
}

// CompactMetadata renders the metadata member as a single compact JSON string,
// preserving member order. Absent metadata yields an empty string, as does a
// payload that fails to compact.
func (r Record) CompactMetadata() string {
	if len(r.Metadata) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, r.Metadata); err != nil {
		return ""
	}
	return buf.String()
}
