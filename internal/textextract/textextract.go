// Package textextract turns uploaded résumé documents into plain text.
package textextract

import (
	"errors"
	"fmt"
	"mime"
	"strings"

	"go.uber.org/zap"
)

const (
	MediaPDF  = "application/pdf"
	MediaDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaText = "text/plain"

	DefaultMaxBytes = 10 * 1024 * 1024
	DefaultMaxChars = 15000
)

var (
	// ErrNoText means the document was readable but no text could be recovered,
	// such as an image or a scanned PDF.
	ErrNoText = errors.New("no text recoverable")
	// ErrUnreadable means the document is corrupt or truncated for its media type.
	ErrUnreadable = errors.New("document could not be read")
	// ErrUnsupportedType means the media type is not handled at all.
	ErrUnsupportedType = errors.New("unsupported media type")
	// ErrTooLarge means the upload exceeds the configured size cap.
	ErrTooLarge = errors.New("document too large")
)

// Config bounds what the extractor accepts and returns.
type Config struct {
	MaxBytes int `mapstructure:"max-size-bytes"`
	MaxChars int `mapstructure:"max-chars"`
}

// Extractor dispatches on media type to a format reader.
type Extractor struct {
	maxBytes int
	maxChars int
	readers  map[string]func([]byte) (string, error)
	logger   *zap.Logger
}

// New builds an extractor. Zero limits fall back to the defaults.
func New(cfg Config, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultMaxChars
	}

	return &Extractor{
		maxBytes: cfg.MaxBytes,
		maxChars: cfg.MaxChars,
		readers: map[string]func([]byte) (string, error){
			MediaPDF:        readPDF,
			MediaDOCX:       readDOCX,
			MediaText:       readPlain,
			"text/markdown": readPlain,
		},
		logger: logger,
	}
}

// Extract returns best-effort plain text capped at the configured number of characters.
func (e *Extractor) Extract(data []byte, mediaType string) (string, error) {
	if len(data) > e.maxBytes {
		return "", fmt.Errorf("%w: %d bytes, limit is %d", ErrTooLarge, len(data), e.maxBytes)
	}

	mt := normalizeMediaType(mediaType)
	if strings.HasPrefix(mt, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNoText, mt)
	}

	read, ok := e.readers[mt]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, mediaType)
	}

	text, err := read(data)
	if err != nil {
		e.logger.Debug("document could not be read", zap.String("media_type", mt), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoText
	}

	runes := []rune(text)
	if len(runes) > e.maxChars {
		text = string(runes[:e.maxChars])
	}

	e.logger.Debug("document text extracted",
		zap.String("media_type", mt),
		zap.Int("bytes", len(data)),
		zap.Int("chars", min(len(runes), e.maxChars)),
	)

	return text, nil
}

func normalizeMediaType(mediaType string) string {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(mediaType))
	}
	return mt
}

func readPlain(data []byte) (string, error) {
	return string(data), nil
}
