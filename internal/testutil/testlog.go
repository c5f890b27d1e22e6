// Package testlog records log output for assertions in tests.
package testlog

import (
	"sync"

	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
)

// Entry is one captured log call.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Recorder collects entries from every logger handed out by Logger.
// Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// New creates an empty Recorder.
func New() *Recorder { return &Recorder{} }

// Logger returns a logx.Logger that appends to the recorder.
func (r *Recorder) Logger() logx.Logger {
	return recording{rec: r}
}

// Entries returns a snapshot of everything logged so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Recorder) capture(level, msg string, fields []logx.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Level:  level,
		Msg:    msg,
		Fields: append([]logx.Field(nil), fields...),
	})
}

type recording struct {
	rec  *Recorder
	with []logx.Field
}

func (l recording) Debug(msg string, f ...logx.Field) { l.rec.capture("debug", msg, l.merged(f)) }
func (l recording) Info(msg string, f ...logx.Field)  { l.rec.capture("info", msg, l.merged(f)) }
func (l recording) Warn(msg string, f ...logx.Field)  { l.rec.capture("warn", msg, l.merged(f)) }
func (l recording) Error(msg string, f ...logx.Field) { l.rec.capture("error", msg, l.merged(f)) }

func (l recording) With(f ...logx.Field) logx.Logger {
	return recording{rec: l.rec, with: l.merged(f)}
}

func (l recording) Sync() error { return nil }

func (l recording) merged(f []logx.Field) []logx.Field {
	out := append([]logx.Field(nil), l.with...)
	return append(out, f...)
}

var _ logx.Logger = recording{}
