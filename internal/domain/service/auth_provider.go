package service

import "context"

// AuthProvider exposes the currently authenticated user.
type AuthProvider interface {
	// CurrentUserID returns the signed-in user's id, or false when nobody is signed in.
	CurrentUserID(ctx context.Context) (string, bool)
}

// IdentityVerifier checks an identity provider token and returns the user id it was issued to.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// SessionStore holds the signed-in user of this installation.
type SessionStore interface {
	AuthProvider

	// SetCurrentUser records the signed-in user.
	SetCurrentUser(userID string)

	// ClearCurrentUser forgets the signed-in user.
	ClearCurrentUser()
}
