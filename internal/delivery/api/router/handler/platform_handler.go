package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"carepush/internal/delivery/api/response"
	deliverycontext "carepush/internal/delivery/context"
	"carepush/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlatformBridge is the shell-facing side of the messaging platform
type PlatformBridge interface {
	SetPermission(settings entity.NotificationSettings)
	RequestedPermission() (*entity.PermissionOptions, bool)
	SetAPNSToken(ctx context.Context, value string)
	DeliverToken(ctx context.Context, token string) (bool, error)
	DeliverForeground(ctx context.Context, msg *entity.RemoteMessage) int
	DeliverOpened(ctx context.Context, msg *entity.RemoteMessage) bool
	DeliverBackground(ctx context.Context, msg *entity.RemoteMessage) error
}

// PlatformHandlerParams holds dependencies for PlatformHandler, injected by Fx.
type PlatformHandlerParams struct {
	fx.In

	Bridge PlatformBridge
	Logger *slog.Logger
}

// PlatformHandler receives platform events reported by the native shell
type PlatformHandler struct {
	bridge PlatformBridge
	logger *slog.Logger
}

// NewPlatformHandler is the constructor for PlatformHandler
func NewPlatformHandler(params PlatformHandlerParams) *PlatformHandler {
	return &PlatformHandler{
		bridge: params.Bridge,
		logger: params.Logger,
	}
}

// PermissionRequest is the user's answer to the permission prompt
type PermissionRequest struct {
	Status        string `json:"status" validate:"required,oneof=granted authorized denied provisional notDetermined"`
	CriticalAlert bool   `json:"critical_alert"`
}

// PermissionPromptResponse tells the shell whether a prompt is pending
type PermissionPromptResponse struct {
	Requested bool                      `json:"requested"`
	Options   *entity.PermissionOptions `json:"options,omitempty"`
}

// APNSTokenRequest carries the APNs device identifier
type APNSTokenRequest struct {
	APNSToken string `json:"apns_token" validate:"required"`
}

// DeliveryTokenRequest carries a delivery token issued by the push service
type DeliveryTokenRequest struct {
	Token string `json:"token" validate:"required,max=4096"`
}

// RemoteMessageRequest is a push message received by the shell
type RemoteMessageRequest struct {
	MessageID    string            `json:"message_id"`
	From         string            `json:"from"`
	SentAt       *time.Time        `json:"sent_at"`
	Data         map[string]string `json:"data"`
	Notification *struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	} `json:"notification"`
}

// ReportPermission stores the answer to the permission prompt
func (h *PlatformHandler) ReportPermission(c echo.Context) error {
	var req PermissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid permission input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	status := entity.ParseAuthorizationStatus(req.Status)
	h.bridge.SetPermission(entity.NotificationSettings{Status: status, CriticalAlert: req.CriticalAlert})

	return response.Success(c, http.StatusOK, entity.NotificationSettings{Status: status, CriticalAlert: req.CriticalAlert})
}

// PermissionPrompt reports the options of a pending permission prompt
func (h *PlatformHandler) PermissionPrompt(c echo.Context) error {
	opts, requested := h.bridge.RequestedPermission()

	return response.Success(c, http.StatusOK, PermissionPromptResponse{Requested: requested, Options: opts})
}

// ReportAPNSToken stores the APNs identifier
func (h *PlatformHandler) ReportAPNSToken(c echo.Context) error {
	var req APNSTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid APNs token input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	h.bridge.SetAPNSToken(c.Request().Context(), req.APNSToken)

	return response.Success(c, http.StatusOK, map[string]bool{"stored": true})
}

// ReportToken stores a new or refreshed delivery token
func (h *PlatformHandler) ReportToken(c echo.Context) error {
	var req DeliveryTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	changed, err := h.bridge.DeliverToken(c.Request().Context(), req.Token)
	if err != nil {
		return response.BadRequest(c, "INVALID_TOKEN", err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]bool{"changed": changed})
}

// ReceiveMessage hands a foreground message to the coordinator
func (h *PlatformHandler) ReceiveMessage(c echo.Context) error {
	msg, err := h.bindMessage(c)
	if err != nil {
		return err
	}

	listeners := h.bridge.DeliverForeground(c.Request().Context(), msg)

	return response.Success(c, http.StatusOK, map[string]any{"message_id": msg.MessageID, "listeners": listeners})
}

// OpenMessage hands a notification tap to the coordinator
func (h *PlatformHandler) OpenMessage(c echo.Context) error {
	msg, err := h.bindMessage(c)
	if err != nil {
		return err
	}

	dispatched := h.bridge.DeliverOpened(c.Request().Context(), msg)

	return response.Success(c, http.StatusOK, map[string]any{"message_id": msg.MessageID, "dispatched": dispatched})
}

// ReceiveBackgroundMessage runs the background handler for a message received while the app was not running
func (h *PlatformHandler) ReceiveBackgroundMessage(c echo.Context) error {
	msg, err := h.bindMessage(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.bridge.DeliverBackground(ctx, msg); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).
			Warn("[API] Background message not handled", slog.String("message_id", msg.MessageID), slog.Any("error", err))

		return response.Conflict(c, "BACKGROUND_HANDLER_UNAVAILABLE", "Background message handler is not registered")
	}

	return response.Success(c, http.StatusOK, map[string]any{"message_id": msg.MessageID, "handled": true})
}

func (h *PlatformHandler) bindMessage(c echo.Context) (*entity.RemoteMessage, error) {
	var req RemoteMessageRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid message input")
	}

	msg := &entity.RemoteMessage{
		MessageID: req.MessageID,
		From:      req.From,
		Data:      req.Data,
	}
	if msg.MessageID == "" {
		msg.MessageID = uuid.NewString()
	}
	if msg.Data == nil {
		msg.Data = map[string]string{}
	}
	if req.SentAt != nil {
		msg.SentAt = req.SentAt.UTC()
	} else {
		msg.SentAt = time.Now().UTC()
	}
	if req.Notification != nil {
		msg.Notification = &entity.MessageNotification{Title: req.Notification.Title, Body: req.Notification.Body}
	}

	return msg, nil
}
