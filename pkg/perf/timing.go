// Package perf is the debug log shared by the muxplug commands. It is off
// unless MUXPLUG_PERF=1 is set or a command calls Enable.
package perf

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/b/muxplug/pkg/paths"
)

var (
	mu      sync.Mutex
	logger  *slog.Logger
	logFile *os.File
)

func init() {
	if os.Getenv("MUXPLUG_PERF") == "1" {
		_ = Enable()
	}
}

// LogPath is where Enable writes.
func LogPath() string {
	return paths.StatePath("perf.log")
}

// Enable opens the log file under the state directory. Calling it again
// is a no-op.
func Enable() error {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return nil
	}
	if _, err := paths.EnsureStateDir(); err != nil {
		return err
	}
	f, err := os.OpenFile(LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open perf log: %w", err)
	}
	logFile = f
	logger = newLogger(f)
	return nil
}

// SetOutput sends the log to w, or disables it when w is nil.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if w == nil {
		logger = nil
		return
	}
	logger = newLogger(w)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Timer tracks elapsed time for a named operation
type Timer struct {
	name  string
	start time.Time
}

// Start begins timing an operation
func Start(name string) *Timer {
	return &Timer{
		name:  name,
		start: time.Now(),
	}
}

// Stop ends timing and logs the result
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Log("timing", "op", t.name, "elapsed", elapsed)
	return elapsed
}

// Track is a convenience function that times a function call
func Track(name string, fn func()) time.Duration {
	t := Start(name)
	fn()
	return t.Stop()
}

// Log writes a debug record with slog key/value pairs.
func Log(msg string, args ...any) {
	write(slog.LevelDebug, msg, args...)
}

// Error writes an error record.
func Error(msg string, err error, args ...any) {
	write(slog.LevelError, msg, append([]any{"err", err}, args...)...)
}

func write(level slog.Level, msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return
	}
	logger.Log(context.Background(), level, msg, args...)
}

// IsEnabled returns whether performance logging is enabled
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logger != nil
}
