package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"quizmaker/internal/export"
	"quizmaker/internal/quiz"
)

// Status values stored for each export attempt.
const (
	StatusOK       = "ok"
	StatusRejected = "rejected"
)

// DefaultListLimit bounds List when no positive limit is given.
const DefaultListLimit = 20

// Record is one stored export attempt.
type Record struct {
	ID            string
	FileName      string
	GroupNum      int
	QuestionCount int
	DueDate       time.Time
	Status        string
	Message       string
	ByteSize      int
	CreatedAt     time.Time
}

// Store is a DuckDB-backed export log. It records attempt metadata only,
// never question content.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the export log at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if ctx == nil {
		return nil, errors.New("history: context is nil")
	}
	if path != "" && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create export log dir: %w", err)
		}
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open export log: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping export log: %w", err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply export log schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record implements export.Recorder.
func (s *Store) Record(ctx context.Context, entry export.Entry) error {
	if s == nil || s.db == nil {
		return errors.New("history: store is closed")
	}
	status := StatusOK
	if entry.Err != nil {
		status = StatusRejected
	}
	message := ""
	if entry.Err != nil {
		message = entry.Err.Error()
	}
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO exports (export_id, file_name, group_num, question_count, due_date, status, message, byte_size, created_at)
		 VALUES (?, ?, ?, ?, CAST(? AS DATE), ?, ?, ?, ?)`,
		uuid.NewString(),
		entry.FileName,
		entry.GroupNum,
		entry.QuestionCount,
		quiz.FormatDate(entry.DueDate),
		status,
		message,
		entry.ByteSize,
		entry.At.UTC(),
	); err != nil {
		return fmt.Errorf("insert export record: %w", err)
	}
	return nil
}

// List returns the most recent export attempts, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("history: store is closed")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT export_id, file_name, group_num, question_count, due_date, status, message, byte_size, created_at
		 FROM exports
		 ORDER BY created_at DESC, export_id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query export records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(
			&record.ID,
			&record.FileName,
			&record.GroupNum,
			&record.QuestionCount,
			&record.DueDate,
			&record.Status,
			&record.Message,
			&record.ByteSize,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan export record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate export records: %w", err)
	}
	return records, nil
}
