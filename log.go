package quicconn

import (
	"fmt"
	"log"
	"os"
)

// calldepth matches the frame skipped by Logger methods below so that
// log.Lshortfile (if the caller enables it) points at the container
// call site rather than this file.
const calldepth = 2

// Logger is the leveled logging surface the container uses for
// poisoning and finalization notices; closing the acceptor is not
// logged. It is
// deliberately narrow — most of a real endpoint's logging happens in
// the event subscriber (see events.go), not here.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// defaultLogger wraps the standard library's log.Logger with leveled
// methods, the same shape as a typical leveled logger in this corpus.
type defaultLogger struct {
	*log.Logger
	debug bool
}

// NewDefaultLogger returns the Logger used when a Config omits one. It
// writes to stderr with standard flags, same as most of the corpus's
// default loggers.
func NewDefaultLogger() Logger {
	return &defaultLogger{
		Logger: log.New(os.Stderr, "quicconn ", log.LstdFlags),
	}
}

func level(prefix, message string) string {
	return fmt.Sprintf("[%s] %s", prefix, message)
}

func (l *defaultLogger) Debug(v ...interface{}) {
	if l.debug {
		l.Output(calldepth, level("DEBUG", fmt.Sprint(v...)))
	}
}

func (l *defaultLogger) Debugf(format string, v ...interface{}) {
	if l.debug {
		l.Output(calldepth, level("DEBUG", fmt.Sprintf(format, v...)))
	}
}

func (l *defaultLogger) Info(v ...interface{}) {
	l.Output(calldepth, level("INFO", fmt.Sprint(v...)))
}

func (l *defaultLogger) Infof(format string, v ...interface{}) {
	l.Output(calldepth, level("INFO", fmt.Sprintf(format, v...)))
}

func (l *defaultLogger) Warn(v ...interface{}) {
	l.Output(calldepth, level("WARN", fmt.Sprint(v...)))
}

func (l *defaultLogger) Warnf(format string, v ...interface{}) {
	l.Output(calldepth, level("WARN", fmt.Sprintf(format, v...)))
}

func (l *defaultLogger) Error(v ...interface{}) {
	l.Output(calldepth, level("ERROR", fmt.Sprint(v...)))
}

func (l *defaultLogger) Errorf(format string, v ...interface{}) {
	l.Output(calldepth, level("ERROR", fmt.Sprintf(format, v...)))
}

// nopLogger discards everything. Used in tests that don't want stderr
// noise from expected poisoning/finalization paths.
type nopLogger struct{}

func (nopLogger) Debug(v ...interface{})                 {}
func (nopLogger) Debugf(format string, v ...interface{}) {}
func (nopLogger) Info(v ...interface{})                  {}
func (nopLogger) Infof(format string, v ...interface{})  {}
func (nopLogger) Warn(v ...interface{})                  {}
func (nopLogger) Warnf(format string, v ...interface{})  {}
func (nopLogger) Error(v ...interface{})                 {}
func (nopLogger) Errorf(format string, v ...interface{}) {}
