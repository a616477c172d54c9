// file: logger/logger.go

package logger

import (
	"os"

	"go-ledger/config"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init; Init applies
// the configured level and format.
var Log = logrus.New()

// Init configures Log from config.AppConfig.Log. An unknown level falls back to info.
func Init() {
	cfg := config.AppConfig.Log

	Log.SetOutput(os.Stdout)

	if cfg.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
