// Package logging builds the named logrus loggers used across the module.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "RESGEOM_LOG_LEVEL"

// NamedLogger creates a logger that prefixes every message with name. The
// level comes from RESGEOM_LOG_LEVEL and defaults to info.
func NamedLogger(name string) *logrus.Logger {
	return newLogger(name, os.Stderr, os.Getenv(LevelEnv))
}

func newLogger(name string, out io.Writer, level string) *logrus.Logger {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	return &logrus.Logger{
		Out: out,
		Formatter: &NamedTextFormatter{
			Name: name,
			TextFormatter: logrus.TextFormatter{
				DisableTimestamp: true,
			},
		},
		Hooks: make(logrus.LevelHooks),
		Level: lvl,
	}
}

// NamedTextFormatter renders entries as text with a "[name]" prefix.
type NamedTextFormatter struct {
	logrus.TextFormatter
	Name string
}

// Format renders a single log entry.
func (f *NamedTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Message = fmt.Sprintf("[%-10s] %s", f.Name, entry.Message)
	return f.TextFormatter.Format(entry)
}
