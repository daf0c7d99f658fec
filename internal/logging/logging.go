package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Options struct {
	Development bool
	File        string // rotated JSON log file, disabled when empty
	Out         io.Writer
}

// Setup configures log and every additional logger the same way. Library
// packages keep their own package-level loggers, pass them in as extra.
func Setup(log *logrus.Logger, opts Options, extra ...*logrus.Logger) error {
	level := logrus.InfoLevel
	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if opts.Development {
		level = logrus.DebugLevel
		formatter = &logrus.TextFormatter{ForceColors: true}
	}

	var hook logrus.Hook
	if opts.File != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   opts.File,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
		})
		if err != nil {
			return fmt.Errorf("unable to create log file hook: %w", err)
		}
	}

	for _, l := range append([]*logrus.Logger{log}, extra...) {
		l.SetLevel(level)
		l.SetFormatter(formatter)
		if opts.Out != nil {
			l.SetOutput(opts.Out)
		}
		if hook != nil {
			l.AddHook(hook)
		}
	}
	return nil
}
