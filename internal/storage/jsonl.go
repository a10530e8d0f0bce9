package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// JSONL writes one JSON object per line to an append-only file.
type JSONL struct {
	path   string
	now    func() time.Time
	logger *zap.Logger
	mu     sync.Mutex
}

// NewJSONL returns a store appending to path. The file is created on the first Save.
func NewJSONL(path string, logger *zap.Logger) *JSONL {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONL{path: path, now: time.Now, logger: logger}
}

// Save stamps rec with the current UTC time and appends it.
func (s *JSONL) Save(_ context.Context, rec Record) error {
	rec.Timestamp = s.now().UTC()

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	if _, err := f.Write(line); err != nil {
		f.Close()
		return fmt.Errorf("append to %s: %w", s.path, err)
	}
	return f.Close()
}

// List reads every record, newest first. Lines that do not decode are skipped.
func (s *JSONL) List(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	records := make([]Record, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++

		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		rec, err := decodeLine(raw)
		if err != nil {
			s.logger.Debug("skipping malformed record", zap.String("path", s.path), zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	slices.Reverse(records)
	return records, nil
}

// Close is a no-op; every Save opens and closes the file.
func (s *JSONL) Close() error { return nil }

// decodeLine goes through a map so older lines with missing or loosely typed fields still load.
func decodeLine(raw []byte) (Record, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Record{}, err
	}

	var rec Record
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &rec,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
	})
	if err != nil {
		return Record{}, err
	}
	if err := decoder.Decode(fields); err != nil {
		return Record{}, err
	}
	return rec, nil
}
