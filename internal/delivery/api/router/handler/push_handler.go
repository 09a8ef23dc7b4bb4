package handler

import (
	"log/slog"
	"net/http"

	"carepush/internal/delivery/api/response"
	deliverycontext "carepush/internal/delivery/context"
	domainerrors "carepush/internal/domain/errors"
	"carepush/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	TokenUC    usecase.TokenUsecase
	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// PushHandler exposes the token manager's lifecycle
type PushHandler struct {
	tokenUC    usecase.TokenUsecase
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewPushHandler is the constructor for PushHandler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		tokenUC:    params.TokenUC,
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// Initialize runs the push startup sequence. It returns once the permission prompt is answered.
func (h *PushHandler) Initialize(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.tokenUC.Initialize(ctx, h.deliveryUC); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).
			Error("[API] Push initialize failed", slog.Any("error", err))

		return response.HandleAppError(c, domainerrors.ErrPushInitializeFailed.WrapMessage(err.Error()))
	}

	return response.Success(c, http.StatusOK, h.tokenUC.Status())
}

// Status returns the token manager's state
func (h *PushHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.tokenUC.Status())
}
