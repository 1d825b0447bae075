package logx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "debug"
	}
}

// ParseLevel maps a level name to a Level. Unknown names are an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Fields carries structured context for a log line.
type Fields map[string]any

var (
	mu       sync.RWMutex
	minLevel           = LevelWarn
	out      io.Writer = io.Discard
	verbose  bool
)

// messageLimit caps message and string field length unless verbose is set.
const messageLimit = 2 * 1024

// SetOutput sets the destination for logs.
func SetOutput(w io.Writer) { mu.Lock(); out = w; mu.Unlock() }

// SetMinLevel sets the minimum level to emit.
func SetMinLevel(l Level) { mu.Lock(); minLevel = l; mu.Unlock() }

// SetVerbose toggles verbose output (no truncation of large fields/messages).
func SetVerbose(v bool) { mu.Lock(); verbose = v; mu.Unlock() }

// Enabled reports whether lines at l would be written.
func Enabled(l Level) bool { mu.RLock(); defer mu.RUnlock(); return l >= minLevel }

// StdlogWriter wraps writes as structured JSON lines at a fixed level, so the
// standard library logger can share the same sink.
func StdlogWriter(level Level, w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	return &stdlogWriter{level: level, w: w}
}

type stdlogWriter struct {
	level Level
	w     io.Writer
}

func (sw *stdlogWriter) Write(p []byte) (int, error) {
	lines := bytes.Split(p, []byte("\n"))
	written := 0
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		if err := emit(sw.w, sw.level, string(line), nil); err != nil {
			return written, err
		}
		written += len(line) + 1 // account for newline
	}
	return written, nil
}

// Debugf logs a debug message.
func Debugf(format string, args ...any) {
	_ = emit(current(), LevelDebug, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message.
func Infof(format string, args ...any) {
	_ = emit(current(), LevelInfo, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message.
func Warnf(format string, args ...any) {
	_ = emit(current(), LevelWarn, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message.
func Errorf(format string, args ...any) {
	_ = emit(current(), LevelError, fmt.Sprintf(format, args...), nil)
}

// Debugw logs msg with fields at debug level.
func Debugw(msg string, fields Fields) { _ = emit(current(), LevelDebug, msg, fields) }

// Infow logs msg with fields at info level.
func Infow(msg string, fields Fields) { _ = emit(current(), LevelInfo, msg, fields) }

func current() io.Writer { mu.RLock(); defer mu.RUnlock(); return out }

type entry struct {
	TS     string `json:"ts"`
	Level  string `json:"level"`
	Msg    string `json:"msg"`
	Fields Fields `json:"fields,omitempty"`
}

func emit(w io.Writer, lvl Level, msg string, fields Fields) error {
	mu.RLock()
	ml := minLevel
	v := verbose
	mu.RUnlock()
	if lvl < ml {
		return nil
	}
	if !v {
		msg = truncate(msg, messageLimit)
	}
	var copied Fields
	if len(fields) > 0 {
		// callers may reuse their map
		copied = make(Fields, len(fields))
		for k, val := range fields {
			if s, ok := val.(string); ok && !v {
				val = truncate(s, messageLimit)
			}
			copied[k] = val
		}
	}
	e := entry{
		TS:     time.Now().Format(time.RFC3339Nano),
		Level:  lvl.String(),
		Msg:    msg,
		Fields: copied,
	}
	b, err := json.Marshal(e)
	if err != nil {
		// fallback to plain message
		_, err2 := io.WriteString(w, msg+"\n")
		return err2
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	// keep last 10 chars to aid context
	suffix := "… [truncated]"
	if limit > len(suffix)+10 {
		head := s[:limit-len(suffix)-10]
		tail := s[len(s)-10:]
		return head + suffix + tail
	}
	return s[:limit]
}
