// Package storage persists flattened screening summaries and reads them back newest first.
package storage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	DriverJSONL  = "jsonl"
	DriverSQLite = "sqlite"

	DefaultJSONLPath  = "candidates_log.jsonl"
	DefaultSQLitePath = "candidates.db"
)

// Record is one completed screening. Interview answers are deliberately not stored.
type Record struct {
	Timestamp         time.Time `json:"timestamp_utc" mapstructure:"timestamp_utc"`
	SessionID         string    `json:"session_id,omitempty" mapstructure:"session_id"`
	Name              string    `json:"name" mapstructure:"name"`
	Email             string    `json:"email" mapstructure:"email"`
	Phone             string    `json:"phone" mapstructure:"phone"`
	Experience        string    `json:"experience" mapstructure:"experience"`
	Position          string    `json:"position" mapstructure:"position"`
	Location          string    `json:"location" mapstructure:"location"`
	TechStack         string    `json:"tech_stack" mapstructure:"tech_stack"`
	QuestionsAsked    int       `json:"questions_asked" mapstructure:"questions_asked"`
	ScreeningComplete bool      `json:"screening_complete" mapstructure:"screening_complete"`
	ResumeAnalyzed    bool      `json:"resume_analyzed" mapstructure:"resume_analyzed"`
}

// Store appends records and lists them most recent first.
type Store interface {
	Save(ctx context.Context, rec Record) error
	List(ctx context.Context) ([]Record, error)
	Close() error
}

// Config selects and locates the backing store.
type Config struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

// Open builds the store named by cfg.Driver.
func Open(cfg Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Driver {
	case "", DriverJSONL:
		path := cfg.Path
		if path == "" {
			path = DefaultJSONLPath
		}
		return NewJSONL(path, logger), nil
	case DriverSQLite:
		path := cfg.Path
		if path == "" {
			path = DefaultSQLitePath
		}
		return OpenSQLite(path, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
