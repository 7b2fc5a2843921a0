package utils

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// ServiceName is attached to every log line
const ServiceName = "car-rental-core"

var base = log.WithField("service", ServiceName)

func init() {
	// JSON lines with ISO 8601 timestamps on stdout, info and above
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
}

// SetLevel changes the global log level; unknown names keep the current level
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

// SetOutput redirects the global logger, e.g. to io.Discard in benchmarks
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Debug(message string, fields map[string]any) {
	base.WithFields(fields).Debug(message)
}

func Info(message string, fields map[string]any) {
	base.WithFields(fields).Info(message)
}

func Warn(message string, fields map[string]any) {
	base.WithFields(fields).Warn(message)
}

func Error(message string, fields map[string]any) {
	base.WithFields(fields).Error(message)
}

// Fatal logs and exits the process with status 1
func Fatal(message string, fields map[string]any) {
	base.WithFields(fields).Fatal(message)
}
