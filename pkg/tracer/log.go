package tracer

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type logLevel int

const (
	logOff logLevel = iota
	logTrace
	logDebug
)

var (
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	level  = parseLogLevel()
)

func parseLogLevel() logLevel {
	if os.Getenv("PSTRACE_DEBUG") != "" {
		return logDebug
	}
	lvl := strings.ToLower(strings.TrimSpace(os.Getenv("PSTRACE_LOG_LEVEL")))
	switch lvl {
	case "", "off", "none", "0":
		return logOff
	case "trace", "info", "1":
		return logTrace
	case "debug", "verbose", "2":
		return logDebug
	default:
		return logOff
	}
}

// setLogLevel lets the CLI override the environment-derived default
// (pkg/tracer/config.go, cmd/pstrace) without requiring a re-exec.
func setLogLevel(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "verbose":
		level = logDebug
	case "trace", "info":
		level = logTrace
	case "off", "none", "":
		level = logOff
	}
}

func debugf(format string, args ...any) {
	if level < logDebug {
		return
	}
	logger.Debug(fmt.Sprintf(format, args...))
}

// logEvent emits one structured line per emitted Event at the "trace"
// level, generalized from the teacher's logIntercept call site.
func logEvent(ev Event) {
	if level < logTrace {
		return
	}
	logger.Info("event",
		"pid", int(ev.PID),
		"kind", ev.Kind.String(),
		"syscall", ev.Syscall.Name(0),
	)
}
