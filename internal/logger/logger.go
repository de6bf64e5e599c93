package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. Level comes from LOG_LEVEL and defaults
// to info; unknown values also fall back to info.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})

	raw := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if raw == "" {
		raw = "info"
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return l
}
