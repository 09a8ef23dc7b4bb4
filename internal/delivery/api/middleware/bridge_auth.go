package middleware

import (
	"log/slog"
	"strings"

	"carepush/internal/delivery/api/response"
	deliverycontext "carepush/internal/delivery/context"
	domainerrors "carepush/internal/domain/errors"
	"carepush/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// BridgeAuthMiddleware authenticates calls made by the native shell.
type BridgeAuthMiddleware struct {
	tokens service.BridgeTokenService
	logger *slog.Logger
}

// NewBridgeAuthMiddleware is the constructor for BridgeAuthMiddleware.
func NewBridgeAuthMiddleware(tokens service.BridgeTokenService, logger *slog.Logger) *BridgeAuthMiddleware {
	return &BridgeAuthMiddleware{tokens: tokens, logger: logger}
}

// Authenticate validates the bridge bearer token and records its subject.
func (m *BridgeAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrBridgeTokenInvalid.ErrorCode(), "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, domainerrors.ErrBridgeTokenInvalid.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("[BridgeAuth] Bridge token rejected", slog.Any("error", err))

			return response.Unauthorized(c, domainerrors.ErrBridgeTokenInvalid.ErrorCode(), domainerrors.ErrBridgeTokenInvalid.Message())
		}

		deliverycontext.SetBridgeSubject(c, claims.Subject)

		return next(c)
	}
}
