package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"quizmaker/internal/form"
)

// MediaType is the content type of exported question files.
const MediaType = "text/plain; charset=utf-8"

// File is a ready-to-save export.
type File struct {
	Name      string
	Content   []byte
	MediaType string
}

// Entry describes one export attempt for a Recorder.
type Entry struct {
	FileName      string
	GroupNum      int
	QuestionCount int
	DueDate       time.Time
	ByteSize      int
	Err           error
	At            time.Time
}

// Recorder receives every export attempt.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Exporter turns form state into a downloadable file.
type Exporter struct {
	Recorder Recorder
	Now      func() time.Time
}

// Export serializes the form. A validation failure returns the serializer's
// error and no file. Recorder failures never change the outcome; they come
// back as a *RecordError, joined with the validation error when both occur.
func (e Exporter) Export(ctx context.Context, f form.Form) (File, error) {
	text, err := f.Export()
	entry := Entry{
		FileName:      f.FileName(),
		GroupNum:      f.GroupNum,
		QuestionCount: f.QuestionAmt(),
		DueDate:       f.DueDate,
		ByteSize:      len(text),
		Err:           err,
		At:            e.now(),
	}
	recordErr := e.record(ctx, entry)
	if err != nil {
		if recordErr != nil {
			return File{}, errors.Join(err, &RecordError{Err: recordErr})
		}
		return File{}, err
	}
	file := File{Name: entry.FileName, Content: []byte(text), MediaType: MediaType}
	if recordErr != nil {
		return file, &RecordError{Err: recordErr}
	}
	return file, nil
}

func (e Exporter) record(ctx context.Context, entry Entry) error {
	if e.Recorder == nil {
		return nil
	}
	return e.Recorder.Record(ctx, entry)
}

func (e Exporter) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// RecordError wraps a recorder failure.
type RecordError struct {
	Err error
}

func (err *RecordError) Error() string {
	return fmt.Sprintf("record export: %v", err.Err)
}

func (err *RecordError) Unwrap() error {
	return err.Err
}

// SplitError separates an Export error into the export failure and the
// recorder failure. Either may be nil.
func SplitError(err error) (exportErr, recordErr error) {
	if err == nil {
		return nil, nil
	}
	parts := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		parts = joined.Unwrap()
	}
	for _, part := range parts {
		var record *RecordError
		if errors.As(part, &record) {
			recordErr = record
			continue
		}
		exportErr = part
	}
	return exportErr, recordErr
}

// IsRecordOnly reports whether err only concerns the export log, meaning the
// returned file is still valid.
func IsRecordOnly(err error) bool {
	exportErr, recordErr := SplitError(err)
	return exportErr == nil && recordErr != nil
}

// WriteFile saves the file into dir and returns the written path.
func WriteFile(dir string, file File) (string, error) {
	if file.Name == "" {
		return "", errors.New("export: file name is empty")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, file.Name)
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
