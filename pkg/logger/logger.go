package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log *logrus.Logger

func init() {
	// Packages log through Log before main has configured it (tests, tools).
	Log = logrus.New()
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// Options configures the global logger.
type Options struct {
	Level string
	// File, when set, receives a copy of every entry through a rotating writer.
	File string
	// Output defaults to stdout.
	Output io.Writer
}

func InitLogger(opts Options) {
	Log = logrus.New()

	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}
	if opts.File != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	Log.Out = out

	// Set JSON formatter for structured logging
	Log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
