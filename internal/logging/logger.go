// Package logging attaches a zerolog logger to the context of each hook run.
//
// Every line goes to two sinks: a human readable stderr stream prefixed with
// the component tag, and a rotating JSON log file.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/tasksave/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
)

// Config defines the configuration for logger creation
type Config struct {
	// Writer replaces the log file sink, typically with a strings.Builder in tests.
	Writer io.Writer
	// Stderr receives the tagged diagnostic lines. Nil disables them.
	Stderr    io.Writer
	Component string
	ProjectID string
	// LogFile overrides the XDG log path.
	LogFile string
	Level   zerolog.Level
}

// New creates a new context with a logger attached
// For production: provide fs and leave Writer nil for file logging
// For tests: provide a custom Writer for in-memory logging
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	fileWriter, err := newFileWriter(fs, config)
	if err != nil {
		return nil, err
	}

	writers := []io.Writer{fileWriter}
	if config.Stderr != nil {
		writers = append(writers, NewConsoleWriter(config.Stderr, config.Component))
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().
		Timestamp().
		Str("component", config.Component).
		Str("project_id", config.ProjectID).
		Str("invocation", uuid.NewString()).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

func newFileWriter(fs afero.Fs, config Config) (io.Writer, error) {
	if config.Writer != nil {
		return config.Writer, nil
	}

	if fs == nil {
		return nil, errors.New("filesystem required when no writer provided")
	}

	logFile := config.LogFile
	if logFile == "" {
		var err error
		logFile, err = storage.New(fs).GetLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}
	} else if err := fs.MkdirAll(filepath.Dir(logFile), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}, nil
}

// NewConsoleWriter formats events as "[component] message key=value" lines.
func NewConsoleWriter(out io.Writer, component string) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       true,
		PartsOrder:    []string{zerolog.MessageFieldName},
		FieldsExclude: []string{"component", "project_id", "invocation"},
		FormatMessage: func(i any) string {
			if i == nil {
				return "[" + component + "]"
			}
			return fmt.Sprintf("[%s] %v", component, i)
		},
	}
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
