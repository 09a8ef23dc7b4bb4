// Package persistence selects the token store backend named by the configuration.
package persistence

import (
	"log/slog"

	"carepush/config"
	"carepush/internal/domain/constants"
	"carepush/internal/domain/repository"
	"carepush/internal/errors"
	"carepush/internal/infra/persistence/firestore"
	"carepush/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the dependencies of the token store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App
}

// NewTokenRepository builds the TokenRepository for the configured store provider.
// Only the selected backend opens a connection.
func NewTokenRepository(params Params) (repository.TokenRepository, error) {
	provider := params.Config.Store.Provider

	switch provider {
	case constants.StoreProviderFirestore:
		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lifecycle,
			App:       params.App,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		params.Logger.Info("[Store] Using Firestore token store",
			slog.String("collection", params.Config.Store.Collection))

		return firestore.NewTokenRepository(client, params.Config.Store), nil

	case constants.StoreProviderPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres store selected but postgres section is missing")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		params.Logger.Info("[Store] Using PostgreSQL token store")

		return postgres.NewTokenRepository(db), nil

	default:
		return nil, errors.Errorf("unknown store provider: %s", provider)
	}
}
