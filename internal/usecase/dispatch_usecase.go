package usecase

import (
	"context"
	"fmt"

	"carepush/internal/domain/entity"
	"carepush/internal/domain/service"
	"carepush/internal/errors"
)

// DispatchRequest is an outbound push addressed to every device of one user
type DispatchRequest struct {
	Kind  entity.NotificationKind
	Title string
	Body  string
	Data  map[string]string
}

// DispatchReport summarises one delivered dispatch
type DispatchReport struct {
	DispatchID string `json:"dispatch_id"`
	Targets    int    `json:"targets"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
	Pruned     int    `json:"pruned"`
}

// DispatchUsecase defines the outbound send path
type DispatchUsecase interface {
	// Enqueue publishes a dispatch event for the worker and returns its id
	Enqueue(ctx context.Context, requestID, userID string, req *DispatchRequest) (string, error)

	// Deliver resolves the target user's tokens, sends in batches and prunes invalid tokens.
	// Failures worth a redelivery are wrapped in RetryableError.
	Deliver(ctx context.Context, event *service.DispatchEvent) (*DispatchReport, error)
}

// RetryableError marks a dispatch failure that should be redelivered
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}
