package log

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

var levelNames = [...]string{
	LogLevelError: "error",
	LogLevelWarn:  "warn",
	LogLevelInfo:  "info",
	LogLevelDebug: "debug",
	LogLevelTrace: "trace",
}

func (level LogLevel) String() string {
	if level < 0 || int(level) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[level]
}

// ParseLogLevel parses one of error, warn, info, debug or trace.
func ParseLogLevel(level string) (LogLevel, error) {
	for l, name := range levelNames {
		if name == level {
			return LogLevel(l), nil
		}
	}
	return LogLevelError, fmt.Errorf("unknown log level: %s", level)
}

// sink is the output and threshold shared by a logger and everything derived
// from it with With.
type sink struct {
	mu     sync.Mutex
	logger *log.Logger
	level  LogLevel
}

// Logger writes one JSON object per line. Entries carry the logger's fields,
// such as the frontend or the run they belong to.
type Logger struct {
	sink   *sink
	fields map[string]any
}

var defaultLogger = New(os.Stdout, "", log.Ldate|log.Ltime, LogLevelInfo)

func New(out io.Writer, prefix string, flag int, level LogLevel) *Logger {
	return &Logger{
		sink: &sink{logger: log.New(out, prefix, flag), level: level},
	}
}

// With returns a logger that adds key to every entry. It shares output and
// level with l.
func (l *Logger) With(key string, value any) *Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &Logger{sink: l.sink, fields: fields}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.sink.mu.Lock()
	l.sink.level = level
	l.sink.mu.Unlock()
}

func (l *Logger) Enabled(level LogLevel) bool {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return level <= l.sink.level
}

func (l *Logger) logf(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	entry := make(map[string]any, len(l.fields)+2)
	for k, v := range l.fields {
		entry[k] = v
	}
	entry["level"] = level.String()
	entry["msg"] = fmt.Sprintf(format, args...)

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"error","msg":"unloggable entry: %v"}`, err))
	}

	l.sink.mu.Lock()
	l.sink.logger.Print(string(line))
	l.sink.mu.Unlock()
}

func (l *Logger) Error(format string, args ...any) { l.logf(LogLevelError, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LogLevelWarn, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LogLevelInfo, format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.logf(LogLevelDebug, format, args...) }
func (l *Logger) Trace(format string, args ...any) { l.logf(LogLevelTrace, format, args...) }

func SetLevel(level LogLevel) {
	defaultLogger.SetLevel(level)
	defaultLogger.Debug("Log level set to %s", level)
}

// SetOutput redirects the default logger. The terminal build points it at a
// file because the screen owns stdout.
func SetOutput(w io.Writer) {
	defaultLogger.sink.mu.Lock()
	defer defaultLogger.sink.mu.Unlock()
	defaultLogger.sink.logger.SetOutput(w)
}

// SetFrontend tags every later entry with the build that wrote it, so the
// window and terminal logs can share a file.
func SetFrontend(name string) {
	defaultLogger = defaultLogger.With("frontend", name)
}

// ForRun returns the default logger with entries tagged by run id.
func ForRun(id fmt.Stringer) *Logger {
	return defaultLogger.With("run", id.String())
}

func Info(format string, args ...any)  { defaultLogger.Info(format, args...) }
func Error(format string, args ...any) { defaultLogger.Error(format, args...) }
func Warn(format string, args ...any)  { defaultLogger.Warn(format, args...) }
func Debug(format string, args ...any) { defaultLogger.Debug(format, args...) }
func Trace(format string, args ...any) { defaultLogger.Trace(format, args...) }

// Fatal logs at error level and exits.
func Fatal(format string, args ...any) {
	defaultLogger.Error(format, args...)
	os.Exit(1)
}
