// Package logging provides tooling for structured logging.
// With logging, you can use context to add logging details to your call stack.
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"

	"go.llib.dev/lazytake/pkg/zerokit"
)

// Logger writes one JSON object per line for every entry at or above its Level.
// A nil *Logger is valid and discards everything.
type Logger struct {
	// Out is where the entries go. Defaults to os.Stdout.
	Out io.Writer
	// Level is the logging level.
	// The default Level is LevelInfo.
	Level Level
	// MessageKey overrides the "message" key.
	MessageKey string
	// KeyFormatter will be used to format the logging field keys
	KeyFormatter func(string) string
	// TestingTB is used to mark logging methods as helper functions,
	// so when logging is used during testing, it points to the actual logging source in the test log entries.
	TestingTB testingTB

	mu sync.Mutex
}

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelError, msg, ds...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, ds ...Detail) {
	l.tb().Helper()
	l.Log(ctx, LevelFatal, msg, ds...)
}

func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	if l == nil {
		return
	}
	l.tb().Helper()
	if !isLevelEnabled(zerokit.Coalesce(l.Level, defaultLevel), level) {
		return
	}
	e := make(entry)
	for _, d := range detailsOf(ctx) {
		d.addTo(l, e)
	}
	for _, d := range ds {
		d.addTo(l, e)
	}
	e[l.key("level")] = level
	e[l.key(zerokit.Coalesce(l.MessageKey, "message"))] = msg
	e[l.key("timestamp")] = clock.Now().Format(time.RFC3339)
	_ = l.write(e)
}

func (l *Logger) write(e entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out io.Writer = os.Stdout
	if l.Out != nil {
		out = l.Out
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	return enc.Encode(e)
}

func (l *Logger) key(k string) string {
	if l.KeyFormatter == nil {
		return k
	}
	return l.KeyFormatter(k)
}

type testingTB interface {
	Helper()
}

type nullTestingTB struct{}

func (nullTestingTB) Helper() {}

func (l *Logger) tb() testingTB {
	if l != nil && l.TestingTB != nil {
		return l.TestingTB
	}
	return nullTestingTB{}
}

// Stub returns a debug level logger that records its output into the returned buffer.
func Stub(tb testingTB) (*Logger, StubOutput) {
	out := &stubOutput{}
	return &Logger{Out: out, Level: LevelDebug, TestingTB: tb}, out
}

type StubOutput interface {
	io.Reader
	String() string
	Bytes() []byte
}

type stubOutput struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (o *stubOutput) Read(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.Read(p)
}

func (o *stubOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.Write(p)
}

func (o *stubOutput) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}

func (o *stubOutput) Bytes() []byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.Bytes()
}
