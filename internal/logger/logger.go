package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the encoding, level and destination of the application log.
type Options struct {
	JSON  bool
	Debug bool
	// File receives the entries instead of stderr. Stdout carries the conversation.
	File string
}

// New builds a zap logger from opts.
func New(opts Options) (*zap.Logger, error) {
	return config(opts).Build()
}

func config(opts Options) zap.Config {
	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:   "step",
			LevelKey:     "level",
			TimeKey:      "time",
			CallerKey:    "caller",
			EncodeLevel:  zapcore.LowercaseLevelEncoder,
			EncodeTime:   zapcore.RFC3339TimeEncoder,
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}

	if opts.JSON {
		cfg.Encoding = "json"
	}
	if opts.Debug {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	if file := strings.TrimSpace(opts.File); file != "" {
		cfg.OutputPaths = []string{file}
	}

	return cfg
}
