package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLite keeps records in a single append-only table.
type SQLite struct {
	db     *sql.DB
	now    func() time.Time
	logger *zap.Logger
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(path string, logger *zap.Logger) (*SQLite, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("storage: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: init schema: %w", err)
	}

	return &SQLite{db: db, now: time.Now, logger: logger}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS candidates (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp_utc      TEXT NOT NULL,
		session_id         TEXT,
		name               TEXT NOT NULL,
		email              TEXT NOT NULL,
		phone              TEXT NOT NULL,
		experience         TEXT NOT NULL,
		position           TEXT NOT NULL,
		location           TEXT NOT NULL,
		tech_stack         TEXT NOT NULL,
		questions_asked    INTEGER NOT NULL DEFAULT 0,
		screening_complete INTEGER NOT NULL DEFAULT 0,
		resume_analyzed    INTEGER NOT NULL DEFAULT 0
	)`)
	return err
}

// Save stamps rec with the current UTC time and inserts it.
func (s *SQLite) Save(ctx context.Context, rec Record) error {
	rec.Timestamp = s.now().UTC()

	_, err := s.db.ExecContext(ctx, `INSERT INTO candidates
		(timestamp_utc, session_id, name, email, phone, experience, position, location, tech_stack,
		 questions_asked, screening_complete, resume_analyzed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp.Format(time.RFC3339Nano), rec.SessionID, rec.Name, rec.Email, rec.Phone,
		rec.Experience, rec.Position, rec.Location, rec.TechStack,
		rec.QuestionsAsked, rec.ScreeningComplete, rec.ResumeAnalyzed,
	)
	if err != nil {
		return fmt.Errorf("storage: insert record: %w", err)
	}
	return nil
}

// List returns every record, newest first.
func (s *SQLite) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT timestamp_utc, COALESCE(session_id, ''), name, email, phone,
		experience, position, location, tech_stack, questions_asked, screening_complete, resume_analyzed
		FROM candidates ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("storage: query records: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var (
			rec Record
			ts  string
		)
		if err := rows.Scan(&ts, &rec.SessionID, &rec.Name, &rec.Email, &rec.Phone, &rec.Experience,
			&rec.Position, &rec.Location, &rec.TechStack, &rec.QuestionsAsked, &rec.ScreeningComplete,
			&rec.ResumeAnalyzed); err != nil {
			return nil, fmt.Errorf("storage: scan record: %w", err)
		}
		if rec.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			s.logger.Debug("record has unparsable timestamp", zap.String("timestamp", ts), zap.Error(err))
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
