package firebase

import (
	"context"
	"log/slog"

	"carepush/config"
	"carepush/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the dependencies of the shared Firebase app
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewApp initialises the Firebase app shared by messaging, auth and Firestore. Without a
// credentials path the app falls back to Application Default Credentials.
func NewApp(params Params) (*firebase.App, error) {
	var (
		appConfig *firebase.Config
		opts      []option.ClientOption
	)

	if fb := params.Config.Firebase; fb != nil {
		if fb.ProjectID != "" {
			appConfig = &firebase.Config{ProjectID: fb.ProjectID}
		}
		if fb.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(fb.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(context.Background(), appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("[Firebase] App initialized", slog.Bool("adc", len(opts) == 0))

	return app, nil
}
