package infrastructure

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"farmwatch.app/pkg/logger"
)

// FileLoggerAdapter writes JSON log lines to an append-only file. It shares
// the slog adapter's field handling, so credentials are masked here too.
type FileLoggerAdapter struct {
	*SlogLoggerAdapter
	file *os.File
}

// NewFileLoggerAdapter opens (or creates) logPath for appending
func NewFileLoggerAdapter(logPath string, minLevel slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLoggerAdapter{
		SlogLoggerAdapter: NewSlogLoggerAdapter(logger.NewWithWriter(file, minLevel).Logger),
		file:              file,
	}, nil
}

// Path returns the file being written
func (f *FileLoggerAdapter) Path() string {
	return f.file.Name()
}

// Close flushes and closes the log file
func (f *FileLoggerAdapter) Close() error {
	if err := f.file.Sync(); err != nil {
		_ = f.file.Close()
		return err
	}
	return f.file.Close()
}
