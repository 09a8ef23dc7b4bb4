package main

import (
	"context"
	"log/slog"
	"os"

	"carepush/config"
	"carepush/internal/delivery"
	"carepush/internal/delivery/api"
	"carepush/internal/delivery/api/middleware"
	"carepush/internal/delivery/api/router/handler"
	"carepush/internal/domain/service"
	"carepush/internal/infra/auth"
	"carepush/internal/infra/firebase"
	logs "carepush/internal/infra/log"
	"carepush/internal/infra/notification"
	"carepush/internal/infra/persistence"
	"carepush/internal/infra/platform/bridge"
	"carepush/internal/infra/pubsub"
	"carepush/internal/usecase"
	"carepush/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type pushLifecycleParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	TokenUC    usecase.TokenUsecase
	DeliveryUC usecase.DeliveryUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startPush,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebase.NewApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewTokenRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				bridge.New,
				fx.As(new(service.MessagingPlatform), new(handler.PlatformBridge)),
			),
			auth.NewSession,
			newAuthProvider,
			auth.NewFirebaseVerifier,
			auth.NewBridgeTokenService,
			notification.NewFirebaseService,
		),
		pubsub.Module,
	)
}

// newAuthProvider exposes the session as the read-only view the token manager needs
func newAuthProvider(session service.SessionStore) service.AuthProvider {
	return session
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenManager,
			impl.NewDeliveryRouter,
			impl.NewSessionService,
			impl.NewDispatchService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewBridgeAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewPushHandler,
			handler.NewPlatformHandler,
			handler.NewEventStreamHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startPush initializes push in the background once the process is up. Initialization
// waits on the native shell, so a failure is only logged and POST /v1/push/initialize retries.
func startPush(params pushLifecycleParams) {
	initCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)

				if err := params.TokenUC.Initialize(initCtx, params.DeliveryUC); err != nil {
					params.Logger.Warn("[Push] Startup initialization failed", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			select {
			case <-done:
			case <-ctx.Done():
			}

			params.TokenUC.Close()
			params.DeliveryUC.Close()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
