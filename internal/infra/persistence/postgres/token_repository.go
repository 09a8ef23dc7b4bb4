// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"carepush/internal/domain/entity"
	domainerrors "carepush/internal/domain/errors"
	"carepush/internal/domain/repository"
	"carepush/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// UpsertToken inserts the (user, token) row or refreshes its platform and update time.
// Timestamps are assigned by the database.
func (repo *tokenRepository) UpsertToken(ctx context.Context, userID string, token *entity.DeliveryToken) error {
	if userID == "" || token == nil || token.Value == "" {
		return repository.ErrInvalidToken
	}

	platform := token.Platform.String()
	err := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "token"}},
			DoUpdates: clause.Assignments(map[string]any{
				"platform":   platform,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).
		Create(map[string]any{
			"user_id":    userID,
			"token":      token.Value,
			"platform":   platform,
			"created_at": gorm.Expr("NOW()"),
			"updated_at": gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return repository.ErrInvalidToken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push token")
	}

	return nil
}

// RemoveToken deletes the (user, token) row. Missing rows are not an error.
func (repo *tokenRepository) RemoveToken(ctx context.Context, userID, value string) error {
	if userID == "" || value == "" {
		return repository.ErrInvalidToken
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, value).
		Delete(&model.PushTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove push token")
	}

	return nil
}

// FindTokensByUser retrieves the user's tokens, most recently updated first.
func (repo *tokenRepository) FindTokensByUser(ctx context.Context, userID string) ([]*entity.DeliveryToken, error) {
	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push tokens by user")
	}

	if len(tokenModels) == 0 {
		return nil, repository.ErrUserNotFound
	}

	tokens := make([]*entity.DeliveryToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toTokenDomain(tokenM))
	}

	return tokens, nil
}

// FindOwnersByToken retrieves every user id holding the token.
func (repo *tokenRepository) FindOwnersByToken(ctx context.Context, value string) ([]string, error) {
	var owners []string

	if err := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("token = ?", value).
		Distinct().
		Pluck("user_id", &owners).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push token owners")
	}

	return owners, nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM PushTokenModel to a domain DeliveryToken entity.
func toTokenDomain(data *model.PushTokenModel) *entity.DeliveryToken {
	if data == nil {
		return nil
	}

	return &entity.DeliveryToken{
		Value:     data.Token,
		Platform:  entity.ParsePlatform(data.Platform),
		IssuedAt:  data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
