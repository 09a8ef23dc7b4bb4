// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"carepush/internal/delivery/api/middleware"
	"carepush/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler       *handler.SessionHandler
	PushHandler          *handler.PushHandler
	PlatformHandler      *handler.PlatformHandler
	EventStreamHandler   *handler.EventStreamHandler
	UserHandler          *handler.UserHandler
	BridgeAuthMiddleware *middleware.BridgeAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler     *handler.SessionHandler
	pushHandler        *handler.PushHandler
	platformHandler    *handler.PlatformHandler
	eventStreamHandler *handler.EventStreamHandler
	userHandler        *handler.UserHandler
	bridgeAuth         *middleware.BridgeAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:     params.SessionHandler,
		pushHandler:        params.PushHandler,
		platformHandler:    params.PlatformHandler,
		eventStreamHandler: params.EventStreamHandler,
		userHandler:        params.UserHandler,
		bridgeAuth:         params.BridgeAuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/v1")

	sessionGroup := apiV1.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.Current)
		sessionGroup.POST("", r.sessionHandler.SignIn)
		sessionGroup.DELETE("", r.sessionHandler.SignOut)
	}

	pushGroup := apiV1.Group("/push")
	{
		pushGroup.POST("/initialize", r.pushHandler.Initialize)
		pushGroup.GET("/status", r.pushHandler.Status)
	}

	eventsGroup := apiV1.Group("/events")
	{
		eventsGroup.GET("/live", r.eventStreamHandler.Live)
		eventsGroup.GET("/deeplinks", r.eventStreamHandler.DeepLinks)
	}

	// Calls made by the native shell
	platformGroup := apiV1.Group("/platform")
	platformGroup.Use(r.bridgeAuth.Authenticate)
	{
		platformGroup.GET("/permission", r.platformHandler.PermissionPrompt)
		platformGroup.POST("/permission", r.platformHandler.ReportPermission)
		platformGroup.POST("/apns", r.platformHandler.ReportAPNSToken)
		platformGroup.POST("/token", r.platformHandler.ReportToken)
		platformGroup.POST("/messages", r.platformHandler.ReceiveMessage)
		platformGroup.POST("/messages/opened", r.platformHandler.OpenMessage)
		platformGroup.POST("/messages/background", r.platformHandler.ReceiveBackgroundMessage)
	}

	usersGroup := apiV1.Group("/users")
	usersGroup.Use(r.bridgeAuth.Authenticate)
	{
		usersGroup.GET("/:id/targets", r.userHandler.Targets)
		usersGroup.POST("/:id/notifications", r.userHandler.Notify)
	}
}
