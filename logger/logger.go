// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package logger configures the structured logger used by the command-line tool
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Fields holds structured data attached to a log entry
type Fields map[string]interface{}

// Log wraps logrus.Logger
type Log struct {
	*logrus.Logger
	file io.Closer // log file or rotating logger; nil for stdout and stderr
}

// New returns a logger writing text to stdout at info level
func New() *Log {
	l := &Log{Logger: logrus.New()}
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  time.RFC3339,
		CallerPrettyfier: callerPrettyfier,
	})
	return l
}

// Discard returns a logger that writes nothing
func Discard() *Log {
	l := New()
	l.SetOutput(io.Discard)
	return l
}

// Configure sets level, format and output
//  Input:
//   level  -- panic, fatal, error, warn, info, debug or trace
//   format -- text or json
//   output -- stdout, stderr or a file path
//   maxAge -- if > 0 and output is a file, rotate the file and keep it maxAge days
//  Note: a file opened by a previous call is closed
func (o *Log) Configure(level, format, output string, maxAge int) error {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level '%s'", level)
	}
	o.SetLevel(lvl)
	o.SetReportCaller(lvl >= logrus.DebugLevel)

	// formatter
	switch strings.ToLower(format) {
	case "json":
		o.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
			CallerPrettyfier: callerPrettyfier,
		})
	case "text", "":
		o.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  time.RFC3339,
			CallerPrettyfier: callerPrettyfier,
		})
	default:
		return fmt.Errorf("invalid log format '%s'", format)
	}

	// output
	var w io.Writer
	var file io.Closer
	switch output {
	case "stdout", "":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		if maxAge > 0 {
			lj := &lumberjack.Logger{
				Filename: output,
				MaxAge:   maxAge,
				MaxSize:  100,
				Compress: true,
			}
			w, file = lj, lj
			break
		}
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open log file '%s': %w", output, err)
		}
		w, file = f, f
	}
	if err := o.Close(); err != nil {
		if file != nil {
			file.Close()
		}
		return fmt.Errorf("failed to close previous log file: %w", err)
	}
	o.SetOutput(w)
	o.file = file
	return nil
}

// Close closes the log file, if any, and sends further output to stderr
func (o *Log) Close() error {
	if o.file == nil {
		return nil
	}
	o.SetOutput(os.Stderr)
	err := o.file.Close()
	o.file = nil
	return err
}

// WithComponent returns an entry tagged with a component name
func (o *Log) WithComponent(component string) *logrus.Entry {
	return o.Logger.WithField("component", component)
}

// Duration logs the time spent by an operation
func (o *Log) Duration(component, operation string, start time.Time, fields Fields) {
	if fields == nil {
		fields = make(Fields)
	}
	fields["duration_ms"] = float64(time.Since(start).Nanoseconds()) / 1e6
	fields["operation"] = operation
	o.WithComponent(component).WithFields(logrus.Fields(fields)).Info("performance")
}

// callerPrettyfier prints file:line without the function name
func callerPrettyfier(f *runtime.Frame) (string, string) {
	return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
}
