package handler

import (
	"log/slog"
	"net/http"

	"carepush/internal/delivery/api/response"
	deliverycontext "carepush/internal/delivery/context"
	"carepush/internal/domain/classifier"
	domainerrors "carepush/internal/domain/errors"
	"carepush/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// UserHandler resolves and notifies the devices of a user
type UserHandler struct {
	deliveryUC usecase.DeliveryUsecase
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		deliveryUC: params.DeliveryUC,
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// TargetsResponse lists the delivery tokens of a user
type TargetsResponse struct {
	UserID string   `json:"user_id"`
	Tokens []string `json:"tokens"`
}

// NotifyRequest is an outbound push addressed to every device of a user
type NotifyRequest struct {
	Type  string            `json:"type" validate:"required,notification_type"`
	Title string            `json:"title" validate:"max=256"`
	Body  string            `json:"body" validate:"max=4096"`
	Data  map[string]string `json:"data"`
}

// NotifyResponse identifies a queued dispatch
type NotifyResponse struct {
	DispatchID string `json:"dispatch_id"`
}

// Targets returns the user's current delivery tokens
func (h *UserHandler) Targets(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.BadRequest(c, "INVALID_ID", "User ID is required")
	}

	tokens := h.deliveryUC.ResolveTargets(c.Request().Context(), userID)

	return response.Success(c, http.StatusOK, TargetsResponse{UserID: userID, Tokens: tokens})
}

// Notify queues a push for every device of the user
func (h *UserHandler) Notify(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.BadRequest(c, "INVALID_ID", "User ID is required")
	}

	var req NotifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	dispatchID, err := h.dispatchUC.Enqueue(ctx, deliverycontext.GetRequestID(c), userID, &usecase.DispatchRequest{
		Kind:  classifier.KindOf(req.Type),
		Title: req.Title,
		Body:  req.Body,
		Data:  req.Data,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).
			Error("[API] Failed to queue dispatch", slog.String("user_id", userID), slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrDispatchFailed.WrapMessage(err.Error()))
	}

	return response.Accepted(c, NotifyResponse{DispatchID: dispatchID})
}
