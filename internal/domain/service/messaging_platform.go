package service

import (
	"context"

	"carepush/internal/domain/entity"
)

// MessageHandler receives a remote message from the platform.
type MessageHandler func(ctx context.Context, msg *entity.RemoteMessage)

// TokenRefreshHandler receives a rotated delivery token.
type TokenRefreshHandler func(ctx context.Context, token string)

// BackgroundMessageHandler runs outside the normal process lifecycle. It must not rely
// on any state set up by the token manager.
type BackgroundMessageHandler func(ctx context.Context, msg *entity.RemoteMessage) error

// Unsubscribe detaches a listener. Calling it more than once is a no-op.
type Unsubscribe func()

// MessagingPlatform is the device-side push platform (FCM/APNs).
type MessagingPlatform interface {
	// Platform returns the platform family of this device.
	Platform() entity.Platform

	// SetBackgroundMessageHandler registers the process-wide background handler.
	SetBackgroundMessageHandler(handler BackgroundMessageHandler) error

	// RequestPermission prompts for notification permission.
	RequestPermission(ctx context.Context, opts entity.PermissionOptions) (*entity.NotificationSettings, error)

	// APNSToken returns the APNs identifier, or "" while it is not yet available.
	APNSToken(ctx context.Context) (string, error)

	// Token returns the current delivery token, or "" when none has been issued.
	Token(ctx context.Context) (string, error)

	// OnTokenRefresh subscribes to token rotations.
	OnTokenRefresh(handler TokenRefreshHandler) (Unsubscribe, error)

	// OnMessage subscribes to messages delivered while the app is in the foreground.
	OnMessage(handler MessageHandler) (Unsubscribe, error)

	// OnMessageOpenedApp subscribes to notification taps.
	OnMessageOpenedApp(handler MessageHandler) (Unsubscribe, error)

	// InitialMessage returns the message the app was launched from, at most once.
	InitialMessage(ctx context.Context) (*entity.RemoteMessage, error)
}
