package types

// LogEntry is one batch unit returned by the channel logs endpoint.
// The API returns entries newest-first; lines within an entry are
// chronological.
type LogEntry struct {
	LogLines []LogLine `json:"log_lines"`
}

// LogLine is a single log line. Both fields are optional in the wire
// format, hence the pointers; consumers must not assume they are set.
type LogLine struct {
	Time *string `json:"time,omitempty"`
	Line *string `json:"line,omitempty"`
}
