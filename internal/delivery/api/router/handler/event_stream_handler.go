package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "carepush/internal/delivery/context"
	"carepush/internal/domain/entity"
	"carepush/internal/errors"
	"carepush/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultKeepAlive = 25 * time.Second

// EventStreamHandlerParams holds dependencies for EventStreamHandler, injected by Fx.
type EventStreamHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// EventStreamHandler streams classified notification events as Server-Sent Events
type EventStreamHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
	keepAlive  time.Duration
}

// NewEventStreamHandler is the constructor for EventStreamHandler
func NewEventStreamHandler(params EventStreamHandlerParams) *EventStreamHandler {
	return &EventStreamHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
		keepAlive:  defaultKeepAlive,
	}
}

// streamedEvent is the SSE data of one event
type streamedEvent struct {
	*entity.NotificationEvent
	DeepLink string `json:"deep_link"`
}

// Live streams messages received while the app is in the foreground
func (h *EventStreamHandler) Live(c echo.Context) error {
	return h.stream(c, "live", h.deliveryUC.SubscribeLive())
}

// DeepLinks streams notification taps
func (h *EventStreamHandler) DeepLinks(c echo.Context) error {
	return h.stream(c, "deep_links", h.deliveryUC.SubscribeDeepLinks())
}

func (h *EventStreamHandler) stream(c echo.Context, channel string, events usecase.EventStream) error {
	defer events.Unsubscribe()

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(slog.String("channel", channel))

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	logger.Info("[Stream] Listener attached")
	defer logger.Info("[Stream] Listener detached")

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := io.WriteString(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case event, ok := <-events.Events():
			if !ok {
				return nil
			}

			if err := writeEvent(res, event); err != nil {
				logger.Warn("[Stream] Failed to write event", slog.Any("error", err))

				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(w io.Writer, event *entity.NotificationEvent) error {
	data, err := json.Marshal(streamedEvent{NotificationEvent: event, DeepLink: event.DeepLink()})
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Kind, data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
