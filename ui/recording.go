package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Entry is one recorded call.
type Entry struct {
	Method string
	Level  int
	Value  string
}

type recording struct {
	entries []Entry
	buf     bytes.Buffer
}

// RecordingUI keeps every call instead of printing it. Children created by
// Indent append to the same log.
type RecordingUI struct {
	rec   *recording
	level int
}

func NewRecordingUI() *RecordingUI {
	return &RecordingUI{rec: &recording{}}
}

func (r *RecordingUI) record(method, value string) {
	r.rec.entries = append(r.rec.entries, Entry{Method: method, Level: r.level, Value: value})
}

func (r *RecordingUI) Style(t StyledText) string { return t.Text }

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Critical(format string, args ...any) {
	r.record("Critical", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.record("Section", title)
}

// KeyValue records one entry per row as "label: value".
func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", row[0]+": "+row[1])
	}
}

// Table records one entry per row with cells joined by " | ".
func (r *RecordingUI) Table(headers []string, rows [][]string) {
	r.TableWithGroups(headers, [][][]string{rows})
}

func (r *RecordingUI) TableWithGroups(headers []string, groups [][][]string) {
	for _, g := range groups {
		for _, row := range g {
			r.record("Table", strings.Join(row, " | "))
		}
	}
}

func (r *RecordingUI) Spinner(msg string) func() {
	r.record("Spinner", msg)
	return func() {}
}

func (r *RecordingUI) Indent() UI {
	return &RecordingUI{rec: r.rec, level: r.level + 1}
}

func (r *RecordingUI) Writer() io.Writer {
	return &r.rec.buf
}

func (r *RecordingUI) Entries() []Entry {
	return r.rec.entries
}

// Values returns the values recorded by method, in order.
func (r *RecordingUI) Values(method string) []string {
	var res []string
	for _, e := range r.rec.entries {
		if e.Method == method {
			res = append(res, e.Value)
		}
	}
	return res
}

// HasMessage reports whether any entry contains substr, ignoring case.
func (r *RecordingUI) HasMessage(substr string) bool {
	substr = strings.ToLower(substr)
	for _, e := range r.rec.entries {
		if strings.Contains(strings.ToLower(e.Value), substr) {
			return true
		}
	}
	return false
}

func (r *RecordingUI) Output() string {
	return r.rec.buf.String()
}
