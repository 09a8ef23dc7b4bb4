package usecase

import (
	"context"

	"carepush/internal/domain/entity"
)

// EventStream is one listener on a broadcast channel of classified events
type EventStream interface {
	// Events is closed when the stream is unsubscribed or the router is closed
	Events() <-chan *entity.NotificationEvent

	// Unsubscribe detaches the listener. Safe to call more than once.
	Unsubscribe()
}

// DeliveryUsecase routes classified messages to their consumers and resolves send targets
type DeliveryUsecase interface {
	MessageSink

	// SubscribeLive attaches a listener to foreground messages
	SubscribeLive() EventStream

	// SubscribeDeepLinks attaches a listener to notification taps
	SubscribeDeepLinks() EventStream

	// ResolveTargets returns the user's current token values. Store failures yield an empty list.
	ResolveTargets(ctx context.Context, userID string) []string

	// Close releases every listener
	Close()
}
