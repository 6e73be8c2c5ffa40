package logger

import (
	"fmt"
	"sync/atomic"
)

// Logger is a subsystem logger. All messages carry the subsystem's tag.
type Logger struct {
	backend      *Backend
	subsystemTag string
	level        Level
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.level)))
}

// SetLevel changes the logging level.
func (l *Logger) SetLevel(logLevel Level) {
	atomic.StoreUint32((*uint32)(&l.level), uint32(logLevel))
}

func (l *Logger) write(logLevel Level, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.backend.write(logLevel, l.subsystemTag, fmt.Sprint(args...))
}

func (l *Logger) writef(logLevel Level, format string, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.backend.write(logLevel, l.subsystemTag, fmt.Sprintf(format, args...))
}

// Trace formats a message using the default formats for its operands and
// writes it at level trace.
func (l *Logger) Trace(args ...interface{}) { l.write(LevelTrace, args...) }

// Tracef formats a message according to a format specifier and writes it
// at level trace.
func (l *Logger) Tracef(format string, args ...interface{}) { l.writef(LevelTrace, format, args...) }

// Debug formats a message using the default formats for its operands and
// writes it at level debug.
func (l *Logger) Debug(args ...interface{}) { l.write(LevelDebug, args...) }

// Debugf formats a message according to a format specifier and writes it
// at level debug.
func (l *Logger) Debugf(format string, args ...interface{}) { l.writef(LevelDebug, format, args...) }

// Info formats a message using the default formats for its operands and
// writes it at level info.
func (l *Logger) Info(args ...interface{}) { l.write(LevelInfo, args...) }

// Infof formats a message according to a format specifier and writes it
// at level info.
func (l *Logger) Infof(format string, args ...interface{}) { l.writef(LevelInfo, format, args...) }

// Warn formats a message using the default formats for its operands and
// writes it at level warn.
func (l *Logger) Warn(args ...interface{}) { l.write(LevelWarn, args...) }

// Warnf formats a message according to a format specifier and writes it
// at level warn.
func (l *Logger) Warnf(format string, args ...interface{}) { l.writef(LevelWarn, format, args...) }

// Error formats a message using the default formats for its operands and
// writes it at level error.
func (l *Logger) Error(args ...interface{}) { l.write(LevelError, args...) }

// Errorf formats a message according to a format specifier and writes it
// at level error.
func (l *Logger) Errorf(format string, args ...interface{}) { l.writef(LevelError, format, args...) }

// Critical formats a message using the default formats for its operands
// and writes it at level critical.
func (l *Logger) Critical(args ...interface{}) { l.write(LevelCritical, args...) }

// Criticalf formats a message according to a format specifier and writes
// it at level critical.
func (l *Logger) Criticalf(format string, args ...interface{}) { l.writef(LevelCritical, format, args...) }
