package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger from the configured level.
// Unknown levels fall back to info.
func Init(level string) {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		l = logrus.InfoLevel
	}
	logrus.SetLevel(l)
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}
