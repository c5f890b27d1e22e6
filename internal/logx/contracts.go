// Package logx is the logging facade of the dispatch service. Services and
// gateways depend on the Logger interface, never on a concrete backend, so
// tests can record log output and production can swap handlers freely.
package logx

import "time"

// Logger emits leveled, structured log entries.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field is one key-value attribute of a log entry.
type Field struct {
	Key   string
	Value any
}

// Any builds a field from an arbitrary value.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// String builds a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 builds an int64 field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Float64 builds a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Time builds a time.Time field.
func Time(key string, value time.Time) Field { return Field{Key: key, Value: value} }

// Duration builds a time.Duration field.
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }
