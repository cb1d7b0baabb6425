package logger

import (
	"reflect"
	"sync/atomic"
	"time"

	"github.com/philipp01105/pluginlog/core"
	"github.com/philipp01105/pluginlog/formatter"
)

// pkgPath is skipped when attributing a record to its call site
var pkgPath = reflect.TypeOf((*Logger)(nil)).Elem().PkgPath()

// Logger is a named logger bound to a Factory. Instances are created by
// Factory.GetLogger and are safe for concurrent use.
type Logger struct {
	name  string
	f     *Factory
	short atomic.Pointer[string]
}

// Name returns the logger name; the root logger has the empty name.
func (l *Logger) Name() string {
	return l.name
}

// Log logs at level. With args, format is expanded by formatter.ArrayFormat;
// a trailing error argument becomes the record error unless err is also
// set, which is reported as *formatter.AmbiguousThrowableError.
// Errors from owner discovery and from the sink are returned.
func (l *Logger) Log(level Level, err error, format string, args ...any) error {
	return l.log(level, format, args, err)
}

// log runs one logging call: bind, gate, format, decorate, emit.
func (l *Logger) log(level Level, msg string, args []any, err error) error {
	b := l.f.binder
	if ierr := b.Initialize(false); ierr != nil {
		return ierr
	}

	sink, effective, snap := b.Resolve(l.name)
	sinkLevel := level.Sink()
	// Level check before any formatting or allocation
	if level < effective || !sink.Enabled(sinkLevel) {
		return nil
	}

	if len(args) > 0 {
		t, ferr := formatter.FormatWithErr(msg, args, err)
		if ferr != nil {
			return ferr
		}
		msg, err = t.Message, t.Err
	}

	line := formatter.Line{
		Header:  snap.ShowHeader,
		Level:   level,
		Message: msg,
	}
	if snap.ShowThreadName {
		line.Thread = goroutineName()
	}
	switch {
	case snap.ShowLoggerName:
		line.Name, line.ShowName = l.name, true
	case snap.ShowShortLoggerName:
		line.Name, line.ShowName = l.shortName(), true
	}

	r := core.GetRecord()
	r.Time = l.f.now()
	r.Level = sinkLevel
	r.LoggerName = l.name
	r.Message = line.String()
	r.Err = err
	if l.f.includeCaller {
		r.Caller = core.FindCaller(0, pkgPath)
	}

	herr := sink.Handle(r)
	core.PutRecord(r)
	return herr
}

func (l *Logger) enabled(level Level) bool {
	b := l.f.binder
	if err := b.Initialize(false); err != nil {
		l.f.report(err)
		return false
	}
	sink, effective, _ := b.Resolve(l.name)
	return level >= effective && sink.Enabled(level.Sink())
}

func (l *Logger) emit(level Level, msg string, args []any, err error) {
	if lerr := l.log(level, msg, args, err); lerr != nil {
		l.f.report(lerr)
	}
}

// Trace logs msg verbatim at TRACE
func (l *Logger) Trace(msg string) {
	l.emit(TraceLevel, msg, nil, nil)
}

// Tracef logs at TRACE, substituting args for {} placeholders
func (l *Logger) Tracef(format string, args ...any) {
	l.emit(TraceLevel, format, args, nil)
}

// TraceErr logs msg verbatim at TRACE with an attached error
func (l *Logger) TraceErr(msg string, err error) {
	l.emit(TraceLevel, msg, nil, err)
}

// IsTraceEnabled reports whether TRACE calls would be emitted
func (l *Logger) IsTraceEnabled() bool {
	return l.enabled(TraceLevel)
}

// Debug logs msg verbatim at DEBUG
func (l *Logger) Debug(msg string) {
	l.emit(DebugLevel, msg, nil, nil)
}

// Debugf logs at DEBUG, substituting args for {} placeholders
func (l *Logger) Debugf(format string, args ...any) {
	l.emit(DebugLevel, format, args, nil)
}

// DebugErr logs msg verbatim at DEBUG with an attached error
func (l *Logger) DebugErr(msg string, err error) {
	l.emit(DebugLevel, msg, nil, err)
}

// IsDebugEnabled reports whether DEBUG calls would be emitted
func (l *Logger) IsDebugEnabled() bool {
	return l.enabled(DebugLevel)
}

// Info logs msg verbatim at INFO
func (l *Logger) Info(msg string) {
	l.emit(InfoLevel, msg, nil, nil)
}

// Infof logs at INFO, substituting args for {} placeholders
func (l *Logger) Infof(format string, args ...any) {
	l.emit(InfoLevel, format, args, nil)
}

// InfoErr logs msg verbatim at INFO with an attached error
func (l *Logger) InfoErr(msg string, err error) {
	l.emit(InfoLevel, msg, nil, err)
}

// IsInfoEnabled reports whether INFO calls would be emitted
func (l *Logger) IsInfoEnabled() bool {
	return l.enabled(InfoLevel)
}

// Warn logs msg verbatim at WARN
func (l *Logger) Warn(msg string) {
	l.emit(WarnLevel, msg, nil, nil)
}

// Warnf logs at WARN, substituting args for {} placeholders
func (l *Logger) Warnf(format string, args ...any) {
	l.emit(WarnLevel, format, args, nil)
}

// WarnErr logs msg verbatim at WARN with an attached error
func (l *Logger) WarnErr(msg string, err error) {
	l.emit(WarnLevel, msg, nil, err)
}

// IsWarnEnabled reports whether WARN calls would be emitted
func (l *Logger) IsWarnEnabled() bool {
	return l.enabled(WarnLevel)
}

// Error logs msg verbatim at ERROR
func (l *Logger) Error(msg string) {
	l.emit(ErrorLevel, msg, nil, nil)
}

// Errorf logs at ERROR, substituting args for {} placeholders
func (l *Logger) Errorf(format string, args ...any) {
	l.emit(ErrorLevel, format, args, nil)
}

// ErrorErr logs msg verbatim at ERROR with an attached error
func (l *Logger) ErrorErr(msg string, err error) {
	l.emit(ErrorLevel, msg, nil, err)
}

// IsErrorEnabled reports whether ERROR calls would be emitted
func (l *Logger) IsErrorEnabled() bool {
	return l.enabled(ErrorLevel)
}

// IsEnabled reports whether calls at level would be emitted
func (l *Logger) IsEnabled(level Level) bool {
	return l.enabled(level)
}

func wallClock() time.Time { return time.Now() }
