package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Sentinel errors.
var (
	ErrNotFound        = errors.New("not found")
	ErrCommentRequired = errors.New("a comment is required to reject")
)

// AuthError reports a 401 or 403 from the backend.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication error (status %d): %s", e.Status, e.Message)
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// transientError is a response worth retrying.
type transientError struct {
	status int
	body   string
}

func (e *transientError) Error() string {
	return fmt.Sprintf("backend unavailable (status %d): %s", e.status, e.body)
}

func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryWithBackoff runs fn until it succeeds, fails permanently or maxRetries
// retries have been spent. The wait doubles from base after each attempt.
func retryWithBackoff(ctx context.Context, maxRetries int, base time.Duration, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		var te *transientError
		if !errors.As(lastErr, &te) {
			return lastErr
		}

		if attempt < maxRetries {
			backoff := base * time.Duration(1<<uint(attempt))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
