package firestore

import (
	"context"
	"sort"
	"time"

	"carepush/config"
	"carepush/internal/domain/entity"
	"carepush/internal/domain/repository"
	"carepush/internal/errors"

	gfs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Token entry field names inside the per-user token map.
const (
	entryToken     = "token"
	entryPlatform  = "platform"
	entryIssuedAt  = "issuedAt"
	entryUpdatedAt = "updatedAt"
)

// tokenRepository keeps each user's tokens on users/{uid}. The map field is keyed by token
// value so an entry can carry a server timestamp; the values array mirrors the map keys for
// array-contains ownership lookups.
type tokenRepository struct {
	client      *gfs.Client
	collection  string
	mapField    string
	valuesField string
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(client *gfs.Client, cfg *config.StoreConfig) repository.TokenRepository {
	return &tokenRepository{
		client:      client,
		collection:  cfg.Collection,
		mapField:    cfg.TokenMapField,
		valuesField: cfg.TokenValuesField,
	}
}

// UpsertToken merges the token into the user's document without touching other fields.
func (repo *tokenRepository) UpsertToken(ctx context.Context, userID string, token *entity.DeliveryToken) error {
	if userID == "" || token == nil || token.Value == "" {
		return repository.ErrInvalidToken
	}

	doc := repo.client.Collection(repo.collection).Doc(userID)

	err := repo.client.RunTransaction(ctx, func(ctx context.Context, tx *gfs.Transaction) error {
		var issuedAt any = gfs.ServerTimestamp

		snap, err := tx.Get(doc)
		switch {
		case err == nil:
			if existing, ok := repo.entryOf(snap, token.Value); ok && !existing.IssuedAt.IsZero() {
				issuedAt = existing.IssuedAt
			}
		case status.Code(err) != codes.NotFound:
			return errors.Wrap(err, "failed to read user token document")
		}

		return tx.Set(doc, map[string]any{
			repo.mapField: map[string]any{
				token.Value: map[string]any{
					entryToken:     token.Value,
					entryPlatform:  token.Platform.String(),
					entryIssuedAt:  issuedAt,
					entryUpdatedAt: gfs.ServerTimestamp,
				},
			},
			repo.valuesField: gfs.ArrayUnion(token.Value),
		}, gfs.MergeAll)
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert delivery token")
	}

	return nil
}

// RemoveToken deletes the value from the user's map and mirror array.
func (repo *tokenRepository) RemoveToken(ctx context.Context, userID, value string) error {
	if userID == "" || value == "" {
		return repository.ErrInvalidToken
	}

	_, err := repo.client.Collection(repo.collection).Doc(userID).Update(ctx, []gfs.Update{
		{FieldPath: gfs.FieldPath{repo.mapField, value}, Value: gfs.Delete},
		{FieldPath: gfs.FieldPath{repo.valuesField}, Value: gfs.ArrayRemove(value)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to remove delivery token")
	}

	return nil
}

// FindTokensByUser reads the user's token map, newest first.
func (repo *tokenRepository) FindTokensByUser(ctx context.Context, userID string) ([]*entity.DeliveryToken, error) {
	if userID == "" {
		return nil, repository.ErrUserNotFound
	}

	snap, err := repo.client.Collection(repo.collection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to read user token document")
	}

	raw, err := snap.DataAtPath(gfs.FieldPath{repo.mapField})
	if err != nil {
		// The user exists but has never registered a token.
		return []*entity.DeliveryToken{}, nil
	}

	return decodeTokenMap(raw), nil
}

// FindOwnersByToken returns the ids of the user documents whose mirror array holds the value.
func (repo *tokenRepository) FindOwnersByToken(ctx context.Context, value string) ([]string, error) {
	if value == "" {
		return nil, repository.ErrInvalidToken
	}

	docs, err := repo.client.Collection(repo.collection).
		Where(repo.valuesField, "array-contains", value).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to query token owners")
	}

	owners := make([]string, 0, len(docs))
	for _, doc := range docs {
		owners = append(owners, doc.Ref.ID)
	}

	return owners, nil
}

func (repo *tokenRepository) entryOf(snap *gfs.DocumentSnapshot, value string) (*entity.DeliveryToken, bool) {
	raw, err := snap.DataAtPath(gfs.FieldPath{repo.mapField, value})
	if err != nil {
		return nil, false
	}

	entry, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}

	return decodeEntry(value, entry), true
}

// decodeTokenMap converts the stored map into tokens ordered by last update, newest first.
// Entries that are not maps are skipped.
func decodeTokenMap(raw any) []*entity.DeliveryToken {
	entries, ok := raw.(map[string]any)
	if !ok {
		return []*entity.DeliveryToken{}
	}

	tokens := make([]*entity.DeliveryToken, 0, len(entries))
	for key, value := range entries {
		entry, ok := value.(map[string]any)
		if !ok {
			continue
		}
		tokens = append(tokens, decodeEntry(key, entry))
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].UpdatedAt.Equal(tokens[j].UpdatedAt) {
			return tokens[i].Value < tokens[j].Value
		}

		return tokens[i].UpdatedAt.After(tokens[j].UpdatedAt)
	})

	return tokens
}

func decodeEntry(key string, entry map[string]any) *entity.DeliveryToken {
	value, _ := entry[entryToken].(string)
	if value == "" {
		value = key
	}
	platform, _ := entry[entryPlatform].(string)
	issuedAt, _ := entry[entryIssuedAt].(time.Time)
	updatedAt, _ := entry[entryUpdatedAt].(time.Time)

	return &entity.DeliveryToken{
		Value:     value,
		Platform:  entity.ParsePlatform(platform),
		IssuedAt:  issuedAt,
		UpdatedAt: updatedAt,
	}
}
