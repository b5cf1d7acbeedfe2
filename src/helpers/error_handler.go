package helpers

import (
	"fmt"
	"time"

	"trade-journal/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type TradeJournalError struct {
	Message string
	Cause   error
}

func (e *TradeJournalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TradeJournalError) Unwrap() error {
	return e.Cause
}

// Helper to define distinct error types for type assertions if needed
type ConfigurationError struct{ TradeJournalError }
type StorageError struct{ TradeJournalError }
type NetworkError struct{ TradeJournalError }
type ValidationError struct{ TradeJournalError }

// -----------------------------------------------------------------------------
// Retry Logic
// -----------------------------------------------------------------------------

// RetryFixed attempts fn up to attempts times with a constant pause between
// attempts. Used by the file store, whose policy is a fixed 3x200ms.
func RetryFixed(attempts int, pause time.Duration, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt < attempts-1 {
			time.Sleep(pause)
		}
	}

	return lastErr
}

// -----------------------------------------------------------------------------

// RetryWithBackoff attempts fn up to maxRetries times with exponential backoff.
func RetryWithBackoff(operation string, maxRetries int, baseDelay time.Duration, log *logger.Logger, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if attempt == maxRetries-1 {
			break
		}

		delay := baseDelay * (1 << attempt)
		if log != nil {
			log.Warning("Attempt %d/%d failed for %s: %v. Retrying in %v",
				attempt+1, maxRetries, operation, err, delay)
		}
		time.Sleep(delay)
	}

	return lastErr
}
