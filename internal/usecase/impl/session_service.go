package impl

import (
	"context"
	"log/slog"

	domainerrors "carepush/internal/domain/errors"
	"carepush/internal/domain/service"
	"carepush/internal/usecase"
)

type sessionService struct {
	logger   *slog.Logger
	verifier service.IdentityVerifier
	session  service.SessionStore
	tokens   usecase.TokenUsecase
}

// NewSessionService creates a new session service instance
func NewSessionService(
	logger *slog.Logger,
	verifier service.IdentityVerifier,
	session service.SessionStore,
	tokens usecase.TokenUsecase,
) usecase.SessionUsecase {
	return &sessionService{
		logger:   logger,
		verifier: verifier,
		session:  session,
		tokens:   tokens,
	}
}

// SignIn verifies the ID token, records the user and stores the held delivery token
func (s *sessionService) SignIn(ctx context.Context, idToken string) (string, error) {
	userID, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Warn("[Session] ID token rejected", slog.Any("error", err))

		return "", domainerrors.ErrIDTokenInvalid.WrapMessage(err.Error())
	}

	if previous, ok := s.session.CurrentUserID(ctx); ok && previous != userID {
		// Switching accounts: the device must stop receiving the previous user's pushes.
		s.tokens.RemoveCurrentToken(ctx)
	}

	s.session.SetCurrentUser(userID)
	s.tokens.SyncCurrentToken(ctx)

	s.logger.Info("[Session] Signed in", slog.String("user_id", userID))

	return userID, nil
}

// SignOut removes the current token from the user's set, then forgets the user
func (s *sessionService) SignOut(ctx context.Context) error {
	userID, ok := s.session.CurrentUserID(ctx)
	if !ok {
		return domainerrors.ErrNotSignedIn
	}

	s.tokens.RemoveCurrentToken(ctx)
	s.session.ClearCurrentUser()

	s.logger.Info("[Session] Signed out", slog.String("user_id", userID))

	return nil
}

// CurrentUser returns the signed-in user
func (s *sessionService) CurrentUser(ctx context.Context) (string, bool) {
	return s.session.CurrentUserID(ctx)
}
