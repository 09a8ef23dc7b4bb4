package usecase

import (
	"context"
)

// SessionUsecase defines sign-in and sign-out of the user on this installation
type SessionUsecase interface {
	// SignIn verifies the identity token, records the user and stores the held delivery token
	SignIn(ctx context.Context, idToken string) (string, error)

	// SignOut removes the current delivery token from the user's set and forgets the user
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed-in user
	CurrentUser(ctx context.Context) (string, bool)
}
