// Package logger provides the leveled logger shared by the solver and the
// command line tool.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

//go:generate mockgen -source logger.go -destination logger_mock.go -package logger

const (
	// DefaultLevel is used when a level name cannot be parsed.
	DefaultLevel = "INFO"

	defaultFormat = "%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset} %{message}"
)

// Logger is the subset of *logging.Logger used across the module.
type Logger interface {
	Critical(args ...any)
	Criticalf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Warning(args ...any)
	Warningf(format string, args ...any)
	Notice(args ...any)
	Noticef(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Debug(args ...any)
	Debugf(format string, args ...any)
	IsEnabledFor(level logging.Level) bool
}

// LogLevelFlag selects the verbosity of the command line tool.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: INFO)",
	Value:   DefaultLevel,
}

// NewLogger returns a logger for module writing to stderr at the given
// level. An unknown level falls back to DefaultLevel.
func NewLogger(level string, module string) Logger {
	log := logging.MustGetLogger(module)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultFormat))
	leveled := logging.AddModuleLevel(formatter)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl, _ = logging.LogLevel(DefaultLevel)
	}
	leveled.SetLevel(lvl, module)
	log.SetBackend(leveled)

	return log
}

// NewNopLogger returns a logger that discards everything. Library code
// falls back to it when no logger is configured.
func NewNopLogger() Logger {
	log := logging.MustGetLogger("nop")
	leveled := logging.AddModuleLevel(logging.NewLogBackend(io.Discard, "", 0))
	leveled.SetLevel(logging.CRITICAL, "nop")
	log.SetBackend(leveled)
	return log
}

// ParseTime splits a duration into whole hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	var (
		hours   = uint32(elapsed.Hours())
		minutes = uint32(elapsed.Minutes()) % 60
		seconds = uint32(elapsed.Seconds()) % 60
	)
	return hours, minutes, seconds
}
