package game

import gommonlog "github.com/labstack/gommon/log"

// Logger is the debug-log sink the core emits placement/capture/merge
// events to. A no-op sink suffices when nothing is listening, and that
// is Board's default.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// NopLogger discards every message. It is the zero-value Logger a Board
// uses until SetLogger is called.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}

// GommonLogger adapts github.com/labstack/gommon/log — already reachable
// via Echo in this module's dependency graph — into a Logger.
type GommonLogger struct {
	l *gommonlog.Logger
}

// NewGommonLogger returns a GommonLogger with the given prefix, logging at
// DEBUG level so both Debugf and Infof are observable.
func NewGommonLogger(prefix string) *GommonLogger {
	l := gommonlog.New(prefix)
	l.SetLevel(gommonlog.DEBUG)
	return &GommonLogger{l: l}
}

func (g *GommonLogger) Debugf(format string, args ...interface{}) {
	g.l.Debugf(format, args...)
}

func (g *GommonLogger) Infof(format string, args ...interface{}) {
	g.l.Infof(format, args...)
}
