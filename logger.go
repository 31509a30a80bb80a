package meshseg

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// discard drops every record. Enabled is false, so slog never builds the
// record in the first place.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

// NopLogger returns a logger with no output.
func NopLogger() *slog.Logger { return slog.New(discard{}) }

// current holds the process-wide logger; nil means silent.
var current atomic.Pointer[slog.Logger]

// SetLogger installs l for meshseg and every subpackage. Nil, the initial
// state, silences them again. Safe to call while other goroutines log.
//
// Levels:
//   - Debug: clamped acos arguments, single flow augmentations.
//   - Info: cache rebuilds, cut sizes and stage timings.
//   - Warn: non-manifold fans, welded vertices and other repaired input.
//
// To see everything on stderr:
//
//	meshseg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger installed by SetLogger, or NopLogger when there
// is none.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return NopLogger()
}

// Stopwatch measures the wall time of one named stage.
type Stopwatch struct {
	name  string
	begin time.Time
}

// StartStopwatch begins timing the stage called name.
func StartStopwatch(name string) Stopwatch {
	return Stopwatch{name: name, begin: time.Now()}
}

// Elapsed returns the time since the stopwatch was started.
func (w Stopwatch) Elapsed() time.Duration {
	return time.Since(w.begin)
}

// Report logs "<name> done" at Info level on l with the elapsed time
// attached as the "took" attribute, followed by any extra attributes.
func (w Stopwatch) Report(l *slog.Logger, attrs ...any) {
	if l == nil {
		l = Logger()
	}
	args := append([]any{slog.String("stage", w.name), slog.Duration("took", w.Elapsed())}, attrs...)
	l.Info(w.name+" done", args...)
}
