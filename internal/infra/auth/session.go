// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"sync"

	"carepush/internal/domain/service"
	"carepush/internal/errors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// Session keeps the user signed in on this installation.
type Session struct {
	mu     sync.RWMutex
	userID string
}

// NewSession creates an empty session.
func NewSession() service.SessionStore {
	return &Session{}
}

// CurrentUserID returns the signed-in user's id.
func (s *Session) CurrentUserID(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userID, s.userID != ""
}

// SetCurrentUser records the signed-in user.
func (s *Session) SetCurrentUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = userID
}

// ClearCurrentUser forgets the signed-in user.
func (s *Session) ClearCurrentUser() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = ""
}

// idTokenVerifier is an interface over *auth.Client limited to what sign-in needs.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// firebaseVerifier checks Firebase Authentication ID tokens.
type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier creates an IdentityVerifier backed by Firebase Authentication.
func NewFirebaseVerifier(app *firebase.App) (service.IdentityVerifier, error) {
	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken returns the uid the ID token was issued to.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", errors.New("id token is empty")
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", errors.Wrap(err, "failed to verify id token")
	}

	if token.UID == "" {
		return "", errors.New("id token has no subject")
	}

	return token.UID, nil
}
