package usecase

import (
	"context"

	"carepush/internal/domain/entity"
)

// MessageSink receives the messages the platform delivers after initialization.
type MessageSink interface {
	// HandleForeground receives a message delivered while the app is in the foreground
	HandleForeground(ctx context.Context, msg *entity.RemoteMessage)

	// HandleOpened receives a notification tap, including the launch message
	HandleOpened(ctx context.Context, msg *entity.RemoteMessage)
}

// TokenUsecase defines the permission and token lifecycle of this device
type TokenUsecase interface {
	// Initialize registers the background handler, asks for permission, obtains and stores
	// the delivery token, and routes platform messages to sink. It is a no-op once initialized
	// and after permission was denied. A failing step is returned and a later call retries.
	Initialize(ctx context.Context, sink MessageSink) error

	// StoreToken upserts token into the user's set. An empty userID is a no-op. Store
	// failures are logged, never returned.
	StoreToken(ctx context.Context, userID, token string)

	// SyncCurrentToken stores the held token for the signed-in user, if both exist
	SyncCurrentToken(ctx context.Context)

	// RefreshToken replaces the current token and stores the new value
	RefreshToken(ctx context.Context, newToken string)

	// TokensForUser reads the user's token values. A user without a record yields an empty list.
	TokensForUser(ctx context.Context, userID string) ([]string, error)

	// RemoveCurrentToken removes the current token from the signed-in user's set.
	// It is a no-op without a current token or a signed-in user.
	RemoveCurrentToken(ctx context.Context)

	// IsInitialized reports whether Initialize completed
	IsInitialized() bool

	// Status returns a snapshot of the manager
	Status() entity.PushStatus

	// Close detaches every platform subscription
	Close()
}
