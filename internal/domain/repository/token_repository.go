// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"carepush/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for token persistence.
var (
	// ErrUserNotFound is returned when no token record exists for a user.
	ErrUserNotFound = errors.New("user token record not found")
	// ErrInvalidToken is returned when a token value or user id is empty.
	ErrInvalidToken = errors.New("invalid delivery token")
)

// TokenRepository persists UserTokenSets: per-user sets of delivery tokens keyed by value.
type TokenRepository interface {
	// UpsertToken adds the token to the user's set, or refreshes its platform and
	// update time when the value is already present. Other fields of the user record
	// are left untouched.
	UpsertToken(ctx context.Context, userID string, token *entity.DeliveryToken) error

	// RemoveToken deletes a value from the user's set. Missing users or values are not errors.
	RemoveToken(ctx context.Context, userID, value string) error

	// FindTokensByUser returns the user's set, newest first. Returns ErrUserNotFound when
	// the user has no record at all.
	FindTokensByUser(ctx context.Context, userID string) ([]*entity.DeliveryToken, error)

	// FindOwnersByToken returns every user whose set contains the value.
	FindOwnersByToken(ctx context.Context, value string) ([]string, error)
}
