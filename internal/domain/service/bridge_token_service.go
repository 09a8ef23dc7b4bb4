package service

import "time"

// BridgeClaims identifies the native shell behind a bridge call.
type BridgeClaims struct {
	Subject   string
	Issuer    string
	ExpiresAt time.Time
}

// BridgeTokenService issues and validates credentials for the native shell bridge.
type BridgeTokenService interface {
	// IssueToken signs a credential for the given shell instance.
	IssueToken(subject string, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a credential.
	ValidateToken(tokenString string) (*BridgeClaims, error)
}
