package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"trade-journal/src/helpers"
	"trade-journal/src/logger"
	"trade-journal/src/models"
)

// -----------------------------------------------------------------------------
// FileStore is the log-file backend: dated plain-text files under the
// configured directory, opened append-only in a shared storage area.
// -----------------------------------------------------------------------------

type FileStore struct {
	Config *models.MConfig
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewFileStore(cfg *models.MConfig, log *logger.Logger) (*FileStore, error) {
	return &FileStore{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

// Initialize creates the log directory.
func (s *FileStore) Initialize() error {
	if err := os.MkdirAll(s.Config.Journal.Directory, 0755); err != nil {
		return &helpers.StorageError{TradeJournalError: helpers.TradeJournalError{
			Message: fmt.Sprintf("failed to create log directory '%s'", s.Config.Journal.Directory),
			Cause:   err,
		}}
	}
	return nil
}

// -----------------------------------------------------------------------------

// LogFileName returns the dated file path, e.g. "Logs/log_2026.08.31.txt".
func (s *FileStore) LogFileName(day time.Time) string {
	name := fmt.Sprintf("log_%s.txt", day.Format(models.DateLayout))
	return filepath.Join(s.Config.Journal.Directory, name)
}

// -----------------------------------------------------------------------------

// AppendLines opens path for append with the configured retry policy, seeks
// to the end, writes each line with a trailing newline and closes the file
// on every exit path.
func (s *FileStore) AppendLines(path string, lines []string) error {
	attempts := s.Config.Journal.OpenRetries
	pause := time.Duration(s.Config.Journal.OpenRetryDelayMs) * time.Millisecond

	var f *os.File
	err := helpers.RetryFixed(attempts, pause, func() error {
		var openErr error
		f, openErr = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		return openErr
	})
	if err != nil {
		return &helpers.StorageError{TradeJournalError: helpers.TradeJournalError{
			Message: fmt.Sprintf("failed to open '%s' after %d attempts", path, attempts),
			Cause:   err,
		}}
	}
	defer f.Close()

	// O_APPEND already positions writes at the end; the explicit seek keeps
	// the write offset well-defined for the error path below.
	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return &helpers.StorageError{TradeJournalError: helpers.TradeJournalError{
			Message: fmt.Sprintf("failed to seek to end of '%s'", path),
			Cause:   err,
		}}
	}

	for _, line := range lines {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return &helpers.StorageError{TradeJournalError: helpers.TradeJournalError{
				Message: fmt.Sprintf("failed to write to '%s'", path),
				Cause:   err,
			}}
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// ListLogs returns every log file currently in the store.
func (s *FileStore) ListLogs() ([]string, error) {
	pattern := filepath.Join(s.Config.Journal.Directory, "log_*.txt")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, &helpers.StorageError{TradeJournalError: helpers.TradeJournalError{
			Message: fmt.Sprintf("failed to list '%s'", pattern),
			Cause:   err,
		}}
	}
	return matches, nil
}

// -----------------------------------------------------------------------------

// FileTimes returns the creation and last-access timestamps of a log file.
func (s *FileStore) FileTimes(path string) (created, accessed time.Time, err error) {
	return helpers.FileTimes(path)
}

// -----------------------------------------------------------------------------

// Delete removes a log file.
func (s *FileStore) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		s.Logger.Error("Failed to delete log file %s: %v", path, err)
		return err
	}
	return nil
}
