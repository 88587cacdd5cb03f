package helpers

import (
	"fmt"
	"time"

	"price-tracker/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type PriceTrackerError struct {
	Message string
	Cause   error
}

func (e *PriceTrackerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PriceTrackerError) Unwrap() error {
	return e.Cause
}

// Distinct error types for type assertions where callers care
type ConfigurationError struct{ PriceTrackerError }
type FetchError struct{ PriceTrackerError }
type StorageError struct{ PriceTrackerError }
type ValidationError struct{ PriceTrackerError }

// -----------------------------------------------------------------------------

func NewFetchError(msg string, cause error) *FetchError {
	return &FetchError{PriceTrackerError{Message: msg, Cause: cause}}
}

func NewStorageError(msg string, cause error) *StorageError {
	return &StorageError{PriceTrackerError{Message: msg, Cause: cause}}
}

// -----------------------------------------------------------------------------
// Retry Logic
// -----------------------------------------------------------------------------

// RetryWithBackoff attempts to execute the operation up to maxRetries times with exponential backoff.
func RetryWithBackoff(log *logger.Logger, operation string, maxRetries int, baseDelay time.Duration, fn func() error) error {
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
		log.Warning("Attempt %d/%d failed for %s: %v. Retrying in %v", attempt+1, maxRetries, operation, err, delay)
		time.Sleep(delay)
	}

	return &PriceTrackerError{Message: fmt.Sprintf("%s failed after %d attempts", operation, maxRetries), Cause: lastErr}
}
