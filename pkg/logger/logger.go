package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	info  *logrus.Entry
	warn  *logrus.Entry
	error *logrus.Entry
}

func New() *Logger {
	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	base.SetOutput(os.Stdout)
	base.SetLevel(logrus.InfoLevel)

	entry := logrus.NewEntry(base)
	return &Logger{
		info:  entry,
		warn:  entry,
		error: entry,
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.info.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.warn.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.error.Errorf(format, args...)
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.error.Fatalf(format, args...)
}
