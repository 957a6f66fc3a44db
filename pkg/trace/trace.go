// Package trace provides context-carried logging for the goldstream
// generators. Library code pulls a Tracer out of the context so that no
// package owns a logger and callers control verbosity per invocation.
package trace

import (
	"context"
	"fmt"
	"log"
)

// LogLevel represents tracing verbosity level
type LogLevel int

const (
	// LogLevelNormal for regular user-facing messages
	LogLevelNormal LogLevel = iota
	// LogLevelVerbose for detailed debug output
	LogLevelVerbose
)

type traceKey struct{}

// Tracer provides a context-aware tracing interface
type Tracer struct {
	prefix string
	level  LogLevel
}

// NewTracer creates a new tracer instance
func NewTracer(prefix string, level LogLevel) *Tracer {
	return &Tracer{prefix: prefix, level: level}
}

// WithContext adds the tracer to the given context
func WithContext(ctx context.Context, tracer *Tracer) context.Context {
	return context.WithValue(ctx, traceKey{}, tracer)
}

// FromContext extracts the tracer from the context, falling back to a
// quiet default when none is present.
func FromContext(ctx context.Context) *Tracer {
	if tracer, ok := ctx.Value(traceKey{}).(*Tracer); ok {
		return tracer
	}
	return NewTracer("", LogLevelNormal)
}

// WithPrefix creates a new tracer with the given prefix
func (t *Tracer) WithPrefix(prefix string) *Tracer {
	return &Tracer{prefix: prefix, level: t.level}
}

// IsVerbose returns whether verbose tracing is enabled
func (t *Tracer) IsVerbose() bool {
	return t.level >= LogLevelVerbose
}

// Infof logs a formatted message at normal level
func (t *Tracer) Infof(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if t.prefix != "" {
		log.Printf("%s: %s", t.prefix, msg)
	} else {
		log.Print(msg)
	}
}

// Debugf logs a formatted message only if verbose is enabled
func (t *Tracer) Debugf(format string, args ...interface{}) {
	if !t.IsVerbose() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	log.Printf("%s: %s", t.prefix, msg)
}

// Error logs an error message
func (t *Tracer) Error(err error) {
	if t.prefix != "" {
		log.Printf("%s ERROR: %v", t.prefix, err)
	} else {
		log.Printf("ERROR: %v", err)
	}
}
