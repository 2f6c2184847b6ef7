// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

var (
	mu           sync.Mutex
	out          io.Writer = color.Output
	debugEnabled atomic.Bool
)

// SetOutput redirects every logger in the process. Tests use it to capture lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// SetDebug toggles Debug output.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// WithRequestID adds request ID to context for logging
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// RequestID retrieves request ID from context
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// formatLog formats log message with optional request ID
func formatLog(requestID string, format string, a ...interface{}) string {
	msg := fmt.Sprintf(format, a...)
	if requestID != "" {
		return fmt.Sprintf("[req_id=%s] %s", requestID, msg)
	}
	return msg
}

func write(tag string, msg string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", tag, msg)
}

var (
	infoTag  = color.New(color.FgWhite, color.BgGreen).SprintFunc()
	warnTag  = color.New(color.FgWhite, color.BgYellow).SprintFunc()
	errorTag = color.New(color.FgRed).SprintFunc()
	debugTag = color.New(color.FgCyan).SprintFunc()
)

// Info log information
func Info(format string, a ...interface{}) {
	write(infoTag("[INFO] "), fmt.Sprintf(format, a...))
}

// InfoWithContext logs information with context (includes request ID if available)
func InfoWithContext(ctx context.Context, format string, a ...interface{}) {
	write(infoTag("[INFO] "), formatLog(RequestID(ctx), format, a...))
}

// Warn log warning
func Warn(format string, a ...interface{}) {
	write(warnTag("[WARN] "), fmt.Sprintf(format, a...))
}

// WarnWithContext logs warning with context (includes request ID if available)
func WarnWithContext(ctx context.Context, format string, a ...interface{}) {
	write(warnTag("[WARN] "), formatLog(RequestID(ctx), format, a...))
}

// Error log error
func Error(format string, a ...interface{}) {
	write(errorTag("[Error]"), fmt.Sprintf(format, a...))
}

// ErrorWithContext logs error with context (includes request ID if available)
func ErrorWithContext(ctx context.Context, format string, a ...interface{}) {
	write(errorTag("[Error]"), formatLog(RequestID(ctx), format, a...))
}

// Debug is silent unless SetDebug(true) was called.
func Debug(format string, a ...interface{}) {
	if !debugEnabled.Load() {
		return
	}
	write(debugTag("[DEBUG]"), fmt.Sprintf(format, a...))
}

func DebugWithContext(ctx context.Context, format string, a ...interface{}) {
	if !debugEnabled.Load() {
		return
	}
	write(debugTag("[DEBUG]"), formatLog(RequestID(ctx), format, a...))
}

func InfoStruct(a ...interface{}) {
	write(infoTag("[INFO] "), spew.Sdump(a...))
}
