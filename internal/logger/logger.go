// internal/logger/logger.go
package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-catalog/internal/config"
)

// Setup configures the global logrus logger. Unknown levels fall back to info.
func Setup(cfg config.LogConfig) {
	logrus.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.WithError(err).Warn("Invalid log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
