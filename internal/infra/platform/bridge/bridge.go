// Package bridge implements the device messaging platform on top of calls made by the
// native shell. The shell reports permission answers, identifiers, tokens and messages;
// the coordinator consumes them through service.MessagingPlatform.
package bridge

import (
	"context"
	"log/slog"
	"sync"

	"carepush/config"
	"carepush/internal/domain/entity"
	"carepush/internal/domain/service"
	"carepush/internal/errors"
)

// ErrNoBackgroundHandler is returned when a background message arrives before a handler is set.
var ErrNoBackgroundHandler = errors.New("no background message handler registered")

// Bridge is the MessagingPlatform fed by the native shell.
type Bridge struct {
	platform entity.Platform
	logger   *slog.Logger

	mu                  sync.Mutex
	settings            entity.NotificationSettings
	permissionAnswered  chan struct{}
	requestedPermission *entity.PermissionOptions
	apnsToken           string
	token               string
	initialMessage      *entity.RemoteMessage
	background          service.BackgroundMessageHandler

	nextID   uint64
	refresh  map[uint64]service.TokenRefreshHandler
	messages map[uint64]service.MessageHandler
	opened   map[uint64]service.MessageHandler
}

var _ service.MessagingPlatform = (*Bridge)(nil)

// New creates a bridge for the configured platform. A configured permission other than
// notDetermined answers prompts until the shell reports its own answer.
func New(cfg *config.Config, logger *slog.Logger) *Bridge {
	b := &Bridge{
		platform:           entity.ParsePlatform(cfg.Platform.OS),
		logger:             logger,
		permissionAnswered: make(chan struct{}),
		refresh:            make(map[uint64]service.TokenRefreshHandler),
		messages:           make(map[uint64]service.MessageHandler),
		opened:             make(map[uint64]service.MessageHandler),
	}

	if status := entity.ParseAuthorizationStatus(cfg.Platform.Permission); status != entity.AuthorizationNotDetermined {
		b.settings = entity.NotificationSettings{Status: status, CriticalAlert: status.IsGranted()}
		close(b.permissionAnswered)
	} else {
		b.settings = entity.NotificationSettings{Status: entity.AuthorizationNotDetermined}
	}

	return b
}

// --- service.MessagingPlatform ---

// Platform returns the platform family of this device.
func (b *Bridge) Platform() entity.Platform {
	return b.platform
}

// SetBackgroundMessageHandler registers the handler used for background deliveries.
func (b *Bridge) SetBackgroundMessageHandler(handler service.BackgroundMessageHandler) error {
	if handler == nil {
		return errors.New("background message handler is nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.background = handler

	return nil
}

// RequestPermission records the requested options and waits until the shell has answered.
func (b *Bridge) RequestPermission(ctx context.Context, opts entity.PermissionOptions) (*entity.NotificationSettings, error) {
	b.mu.Lock()
	b.requestedPermission = &opts
	answered := b.permissionAnswered
	b.mu.Unlock()

	select {
	case <-answered:
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "waiting for permission answer")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	settings := b.settings
	settings.CriticalAlert = settings.CriticalAlert && opts.CriticalAlert

	return &settings, nil
}

// APNSToken returns the APNs identifier reported by the shell.
func (b *Bridge) APNSToken(_ context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.apnsToken, nil
}

// Token returns the current delivery token. On iOS no token exists until the APNs identifier does.
func (b *Bridge) Token(_ context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.exposedTokenLocked(), nil
}

// exposedTokenLocked is the token visible to the coordinator. Callers hold b.mu.
func (b *Bridge) exposedTokenLocked() string {
	if b.platform.RequiresBridgingToken() && b.apnsToken == "" {
		return ""
	}

	return b.token
}

// OnTokenRefresh subscribes to token rotations.
func (b *Bridge) OnTokenRefresh(handler service.TokenRefreshHandler) (service.Unsubscribe, error) {
	if handler == nil {
		return nil, errors.New("token refresh handler is nil")
	}

	return subscribe(b, b.refresh, handler), nil
}

// OnMessage subscribes to foreground messages.
func (b *Bridge) OnMessage(handler service.MessageHandler) (service.Unsubscribe, error) {
	if handler == nil {
		return nil, errors.New("message handler is nil")
	}

	return subscribe(b, b.messages, handler), nil
}

// OnMessageOpenedApp subscribes to notification taps.
func (b *Bridge) OnMessageOpenedApp(handler service.MessageHandler) (service.Unsubscribe, error) {
	if handler == nil {
		return nil, errors.New("message opened handler is nil")
	}

	return subscribe(b, b.opened, handler), nil
}

// InitialMessage returns the launch message once.
func (b *Bridge) InitialMessage(_ context.Context) (*entity.RemoteMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	msg := b.initialMessage
	b.initialMessage = nil

	return msg, nil
}

// --- shell side ---

// SetPermission stores the shell's answer to the permission prompt and releases waiting requests.
func (b *Bridge) SetPermission(settings entity.NotificationSettings) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.settings = settings
	if settings.Status == entity.AuthorizationNotDetermined {
		return
	}

	select {
	case <-b.permissionAnswered:
	default:
		close(b.permissionAnswered)
	}

	b.logger.Info("[Bridge] Permission reported", slog.String("status", string(settings.Status)))
}

// RequestedPermission returns the options of the last permission prompt, if any.
func (b *Bridge) RequestedPermission() (*entity.PermissionOptions, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.requestedPermission == nil {
		return nil, false
	}
	opts := *b.requestedPermission

	return &opts, true
}

// SetAPNSToken stores the APNs identifier. A delivery token reported before the identifier
// becomes visible now, so refresh listeners receive it.
func (b *Bridge) SetAPNSToken(ctx context.Context, value string) {
	b.mu.Lock()
	before := b.exposedTokenLocked()
	b.apnsToken = value
	after := b.exposedTokenLocked()
	handlers := snapshot(b.refresh)
	b.mu.Unlock()

	if after == "" || after == before {
		return
	}

	b.logger.Info("[Bridge] Delivery token released by APNs identifier",
		slog.String("token_prefix", entity.TokenPrefix(after)),
		slog.Int("listeners", len(handlers)))

	for _, handler := range handlers {
		handler(ctx, after)
	}
}

// DeliverToken stores the delivery token and notifies refresh listeners when the token
// visible to the coordinator changed. It reports whether listeners were notified.
func (b *Bridge) DeliverToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, errors.New("delivery token is empty")
	}

	b.mu.Lock()
	before := b.exposedTokenLocked()
	b.token = token
	after := b.exposedTokenLocked()
	handlers := snapshot(b.refresh)
	b.mu.Unlock()

	if after == "" || after == before {
		if after == "" {
			b.logger.Info("[Bridge] Delivery token held until the APNs identifier is reported",
				slog.String("token_prefix", entity.TokenPrefix(token)))
		}

		return false, nil
	}

	b.logger.Info("[Bridge] Delivery token reported",
		slog.String("token_prefix", entity.TokenPrefix(after)),
		slog.Int("listeners", len(handlers)))

	for _, handler := range handlers {
		handler(ctx, after)
	}

	return true, nil
}

// DeliverForeground hands a foreground message to every listener and returns how many saw it.
func (b *Bridge) DeliverForeground(ctx context.Context, msg *entity.RemoteMessage) int {
	b.mu.Lock()
	handlers := snapshot(b.messages)
	b.mu.Unlock()

	for _, handler := range handlers {
		handler(ctx, msg)
	}

	return len(handlers)
}

// DeliverOpened hands a notification tap to the listeners. With no listener yet the tap
// launched the app, so it is kept as the initial message. It reports whether it was dispatched.
func (b *Bridge) DeliverOpened(ctx context.Context, msg *entity.RemoteMessage) bool {
	b.mu.Lock()
	handlers := snapshot(b.opened)
	if len(handlers) == 0 {
		b.initialMessage = msg
		b.mu.Unlock()

		b.logger.Info("[Bridge] Launch message held", slog.String("message_id", msg.MessageID))

		return false
	}
	b.mu.Unlock()

	for _, handler := range handlers {
		handler(ctx, msg)
	}

	return true
}

// DeliverBackground runs the registered background handler.
func (b *Bridge) DeliverBackground(ctx context.Context, msg *entity.RemoteMessage) error {
	b.mu.Lock()
	handler := b.background
	b.mu.Unlock()

	if handler == nil {
		return ErrNoBackgroundHandler
	}

	return handler(ctx, msg)
}

// Listeners returns the number of foreground, tap and refresh listeners.
func (b *Bridge) Listeners() (messages, opened, refresh int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.messages), len(b.opened), len(b.refresh)
}

func subscribe[H any](b *Bridge, registry map[uint64]H, handler H) service.Unsubscribe {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	registry[id] = handler
	b.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(registry, id)
		})
	}
}

// snapshot copies the handlers so they run without holding the lock. Callers hold b.mu.
func snapshot[H any](registry map[uint64]H) []H {
	handlers := make([]H, 0, len(registry))
	for _, handler := range registry {
		handlers = append(handlers, handler)
	}

	return handlers
}
