package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger. Level comes from LOG_LEVEL
// and defaults to info.
func Init() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
