package service

import (
	"context"

	"carepush/internal/domain/entity"
)

// PushMessage is the content of an outbound push.
type PushMessage struct {
	Kind  entity.NotificationKind
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult summarises a multicast send.
type BatchResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the gateway reported as unregistered or malformed.
}

// NotificationService defines the push gateway used to deliver to device tokens
type NotificationService interface {
	// SendBatchNotification sends one message to up to 500 device tokens
	SendBatchNotification(ctx context.Context, tokens []string, msg *PushMessage) (*BatchResult, error)

	// SendSingleNotification sends a message to a single device token
	SendSingleNotification(ctx context.Context, token string, msg *PushMessage) error
}
