package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSize = 10
	maxBack = 5
	maxAge  = 30
)

// Options controls where and how verbosely a service logs.
type Options struct {
	// FilePath enables a rotating log file when not empty.
	FilePath    string
	ServiceName string
	Level       string
	// Console disables colors when NoColor is set (production, CI).
	NoColor bool
	Out     io.Writer
}

// NewLogger builds the zerolog logger shared by every component of a service.
func NewLogger(opts Options) (zerolog.Logger, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    opts.NoColor,
		},
	}

	if opts.FilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    maxSize, // megabytes
			MaxBackups: maxBack,
			MaxAge:     maxAge, // days
			Compress:   true,
		})
	}

	level := zerolog.DebugLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().
		Timestamp().
		Caller().
		Str("service", opts.ServiceName).
		Logger().
		Level(level)

	logger.Info().
		Str("logsFilePath", opts.FilePath).
		Str("level", level.String()).
		Msg("Logger initialized")

	return logger, nil
}
