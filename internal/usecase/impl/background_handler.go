package impl

import (
	"context"
	"log/slog"

	"carepush/internal/domain/classifier"
	"carepush/internal/domain/entity"
)

// HandleBackgroundMessage handles a push delivered while the app is not running. It may run
// before anything else is set up, so it only classifies and logs through the default logger.
func HandleBackgroundMessage(ctx context.Context, msg *entity.RemoteMessage) error {
	event := classifier.ClassifyMessage(msg)

	attrs := []slog.Attr{
		slog.String("kind", string(event.Kind)),
		slog.String("deep_link", event.DeepLink()),
	}
	if msg != nil {
		attrs = append(attrs, slog.String("message_id", msg.MessageID))
	}

	slog.Default().LogAttrs(ctx, slog.LevelInfo, "[Background] Message received", attrs...)

	return nil
}
