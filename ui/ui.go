package ui

import (
	"encoding/json"
	"io"
)

// Severity is how loudly a value is shown.
type Severity uint8

const (
	SeverityInfo Severity = iota
	// SeveritySuccess marks owned or known entities.
	SeveritySuccess
	// SeverityWarn marks predicted amounts and other estimates.
	SeverityWarn
	// SeverityError marks unknown or rejected things.
	SeverityError
	// SeverityCritical marks what the user must check before signing.
	SeverityCritical
)

// StyledText is a value with a severity. It marshals to JSON as the bare
// text.
type StyledText struct {
	Text     string
	Severity Severity
}

func Plain(text string) StyledText     { return StyledText{Text: text} }
func Good(text string) StyledText      { return StyledText{Text: text, Severity: SeveritySuccess} }
func Warning(text string) StyledText   { return StyledText{Text: text, Severity: SeverityWarn} }
func Bad(text string) StyledText       { return StyledText{Text: text, Severity: SeverityError} }
func Important(text string) StyledText { return StyledText{Text: text, Severity: SeverityCritical} }

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is everything the commands print through. TerminalUI writes to a
// terminal, RecordingUI keeps what was written for tests.
//
// Nested blocks are printed through the child returned by Indent.
type UI interface {
	// Style renders t for embedding in a line. Without colours it is t.Text.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	// Critical is for what the user must review before signing.
	Critical(format string, args ...any)

	// Section prints a titled separator.
	Section(title string)
	// KeyValue prints label/value pairs with the values aligned.
	KeyValue(rows [][2]string)
	Table(headers []string, rows [][]string)
	// TableWithGroups prints one table with a divider between groups.
	TableWithGroups(headers []string, groups [][][]string)

	// Spinner shows msg until the returned func is called.
	Spinner(msg string) func()

	Indent() UI
	// Writer is an io.Writer at the current indent.
	Writer() io.Writer
}
