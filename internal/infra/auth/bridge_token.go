package auth

import (
	"time"

	"carepush/config"
	"carepush/internal/domain/service"
	"carepush/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const minBridgeSecretLength = 32

// bridgeTokenService signs and validates HS256 credentials for the native shell.
type bridgeTokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewBridgeTokenService is the constructor for bridgeTokenService.
func NewBridgeTokenService(cfg *config.Config) (service.BridgeTokenService, error) {
	if len(cfg.Bridge.Secret) < minBridgeSecretLength {
		return nil, errors.Errorf("bridge secret must be at least %d characters", minBridgeSecretLength)
	}

	return &bridgeTokenService{
		secret: []byte(cfg.Bridge.Secret),
		issuer: cfg.Bridge.Issuer,
		now:    time.Now,
	}, nil
}

// IssueToken creates a credential for one shell instance.
func (s *bridgeTokenService) IssueToken(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("bridge token subject is empty")
	}
	if ttl <= 0 {
		return "", errors.New("bridge token ttl must be positive")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign bridge token")
	}

	return token, nil
}

// ValidateToken checks signature, issuer and expiry.
func (s *bridgeTokenService) ValidateToken(tokenString string) (*service.BridgeClaims, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate bridge token")
	}

	result := &service.BridgeClaims{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
