package logs

import (
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

// runID tags every log line from one invocation so interleaved runs writing to
// the same log collector can be told apart.
var runID = uuid.NewString()[:8]

func ConsoleLogger() *slog.Logger {
	w := os.Stderr

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})).With("run", runID)

	// set global logger with custom options
	slog.SetDefault(logger)
	return logger
}

// RunID returns the identifier attached to this invocation's log lines.
func RunID() string {
	return runID
}
