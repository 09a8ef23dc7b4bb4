// Package firestore stores user token sets as fields of the user documents in Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"carepush/internal/errors"

	gfs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	App    *firebase.App
	Logger *slog.Logger
}

// New creates the Firestore client from the shared Firebase app
func New(params Params) (*gfs.Client, error) {
	client, err := params.App.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("[Firestore] Closing client")

			return client.Close()
		},
	})

	return client, nil
}
