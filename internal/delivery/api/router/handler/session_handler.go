package handler

import (
	"log/slog"
	"net/http"

	"carepush/internal/delivery/api/response"
	"carepush/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler handles sign-in and sign-out of the device user
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SignInRequest carries the identity provider's ID token
type SignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// SessionResponse describes the signed-in user
type SessionResponse struct {
	UserID   string `json:"user_id,omitempty"`
	SignedIn bool   `json:"signed_in"`
}

// SignIn verifies the ID token and stores the device token for the user
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, err := h.sessionUC.SignIn(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{UserID: userID, SignedIn: true})
}

// SignOut removes the device token from the user and forgets the user
func (h *SessionHandler) SignOut(c echo.Context) error {
	if err := h.sessionUC.SignOut(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{SignedIn: false})
}

// Current returns the signed-in user
func (h *SessionHandler) Current(c echo.Context) error {
	userID, ok := h.sessionUC.CurrentUser(c.Request().Context())

	return response.Success(c, http.StatusOK, SessionResponse{UserID: userID, SignedIn: ok})
}
