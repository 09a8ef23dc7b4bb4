package impl

import (
	"context"
	"log/slog"

	"carepush/config"
	"carepush/internal/domain/classifier"
	"carepush/internal/domain/entity"
	"carepush/internal/usecase"
	"carepush/internal/util/broadcast"
)

type deliveryRouter struct {
	logger    *slog.Logger
	tokens    usecase.TokenUsecase
	live      *broadcast.Hub[*entity.NotificationEvent]
	deepLinks *broadcast.Hub[*entity.NotificationEvent]
}

// NewDeliveryRouter creates the router feeding the live and deep-link channels
func NewDeliveryRouter(cfg *config.Config, logger *slog.Logger, tokens usecase.TokenUsecase) usecase.DeliveryUsecase {
	buffer := cfg.Platform.SubscriberBuffer

	return &deliveryRouter{
		logger:    logger,
		tokens:    tokens,
		live:      broadcast.NewHub[*entity.NotificationEvent]("live", buffer, logger),
		deepLinks: broadcast.NewHub[*entity.NotificationEvent]("deep_links", buffer, logger),
	}
}

// HandleForeground classifies a foreground message and publishes it to live listeners
func (r *deliveryRouter) HandleForeground(ctx context.Context, msg *entity.RemoteMessage) {
	event := classifier.ClassifyMessage(msg)
	delivered := r.live.Publish(event)

	r.logger.DebugContext(ctx, "[Router] Foreground message routed",
		slog.String("kind", string(event.Kind)),
		slog.Int("listeners", delivered))
}

// HandleOpened classifies a tapped message and publishes it to deep-link listeners
func (r *deliveryRouter) HandleOpened(ctx context.Context, msg *entity.RemoteMessage) {
	event := classifier.ClassifyMessage(msg)
	delivered := r.deepLinks.Publish(event)

	r.logger.InfoContext(ctx, "[Router] Opened message routed",
		slog.String("kind", string(event.Kind)),
		slog.String("deep_link", event.DeepLink()),
		slog.Int("listeners", delivered))
}

// SubscribeLive attaches a listener to foreground messages
func (r *deliveryRouter) SubscribeLive() usecase.EventStream {
	return r.live.Subscribe()
}

// SubscribeDeepLinks attaches a listener to notification taps
func (r *deliveryRouter) SubscribeDeepLinks() usecase.EventStream {
	return r.deepLinks.Subscribe()
}

// ResolveTargets reads the user's tokens on every call. Failures are logged and yield no targets.
func (r *deliveryRouter) ResolveTargets(ctx context.Context, userID string) []string {
	tokens, err := r.tokens.TokensForUser(ctx, userID)
	if err != nil {
		r.logger.ErrorContext(ctx, "[Router] Failed to resolve targets",
			slog.String("user_id", userID),
			slog.Any("error", err))

		return []string{}
	}

	return tokens
}

// Close releases every listener of both channels
func (r *deliveryRouter) Close() {
	r.live.Close()
	r.deepLinks.Close()
}
