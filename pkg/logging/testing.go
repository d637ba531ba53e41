package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// Entry is one decoded JSON log line.
type Entry map[string]any

// Message returns the entry's message.
func (e Entry) Message() string {
	s, _ := e[zerolog.MessageFieldName].(string)
	return s
}

// Level returns the entry's level.
func (e Entry) Level() string {
	s, _ := e[zerolog.LevelFieldName].(string)
	return s
}

// Str returns a string field, or "" when absent.
func (e Entry) Str(key string) string {
	s, _ := e[key].(string)
	return s
}

// Int returns a numeric field; JSON numbers decode as float64.
func (e Entry) Int(key string) (int, bool) {
	f, ok := e[key].(float64)
	return int(f), ok
}

// TestLogger records JSON log output at trace level for assertions.
type TestLogger struct {
	*zerolog.Logger
	Buffer *bytes.Buffer
}

// NewTestLogger creates a TestLogger. zerolog's global level is lowered to
// trace until the test ends.
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.TraceLevel).With().Timestamp().Logger()
	return &TestLogger{Logger: &logger, Buffer: buf}
}

// Output returns everything logged so far.
func (tl *TestLogger) Output() string {
	return tl.Buffer.String()
}

// Entries decodes every logged line. Lines that are not JSON are skipped.
func (tl *TestLogger) Entries() []Entry {
	var entries []Entry
	for _, line := range strings.Split(strings.TrimSpace(tl.Output()), "\n") {
		var e Entry
		if json.Unmarshal([]byte(line), &e) == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// Find returns the first entry logged with msg.
func (tl *TestLogger) Find(msg string) (Entry, bool) {
	for _, e := range tl.Entries() {
		if e.Message() == msg {
			return e, true
		}
	}
	return nil, false
}

// Count returns the number of entries logged with msg, or of all entries
// when msg is empty.
func (tl *TestLogger) Count(msg string) int {
	n := 0
	for _, e := range tl.Entries() {
		if msg == "" || e.Message() == msg {
			n++
		}
	}
	return n
}

// Contains reports whether the raw output contains substr.
func (tl *TestLogger) Contains(substr string) bool {
	return strings.Contains(tl.Output(), substr)
}

// Reset drops everything logged so far.
func (tl *TestLogger) Reset() {
	tl.Buffer.Reset()
}

// AssertLogged fails the test unless an entry with msg was logged at level.
func (tl *TestLogger) AssertLogged(t testing.TB, level, msg string) Entry {
	t.Helper()
	for _, e := range tl.Entries() {
		if e.Message() == msg && e.Level() == level {
			return e
		}
	}
	t.Errorf("no %s entry %q in log output:\n%s", level, msg, tl.Output())
	return nil
}

// DisableLoggingForTest silences the default logger until the test ends.
func DisableLoggingForTest(t testing.TB) {
	t.Helper()
	prev := *Default()
	SetDefault(zerolog.Nop())
	t.Cleanup(func() { SetDefault(prev) })
}

// CaptureLoggingForTest routes the default logger into a TestLogger until the test ends.
func CaptureLoggingForTest(t testing.TB) *TestLogger {
	t.Helper()
	prev := *Default()
	tl := NewTestLogger(t)
	SetDefault(*tl.Logger)
	t.Cleanup(func() { SetDefault(prev) })
	return tl
}
