package service

import (
	"context"
)

// DispatchEvent asks the worker to fan a push out to every device of one user
type DispatchEvent struct {
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	DispatchID   string            `json:"dispatch_id"`
	TargetUserID string            `json:"target_user_id"`
	Type         string            `json:"type"` // Wire discriminator, e.g. "sos_alert"
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Data         map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch event for async delivery
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
