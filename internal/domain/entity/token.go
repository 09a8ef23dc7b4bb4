// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Platform identifies the push platform family that issued a delivery token.
type Platform string

const (
	// PlatformIOS indicates an APNs-bridged token.
	PlatformIOS Platform = "ios"
	// PlatformAndroid indicates a native FCM token.
	PlatformAndroid Platform = "android"
)

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the Platform is a known value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid:
		return true
	default:
		return false
	}
}

// RequiresBridgingToken reports whether a token can only be issued after an APNs identifier exists.
func (p Platform) RequiresBridgingToken() bool {
	return p == PlatformIOS
}

// ParsePlatform converts a loose platform string, defaulting to android.
func ParsePlatform(s string) Platform {
	if Platform(strings.ToLower(strings.TrimSpace(s))) == PlatformIOS {
		return PlatformIOS
	}

	return PlatformAndroid
}

// DeliveryToken is an opaque address issued by the push platform for one app installation.
type DeliveryToken struct {
	Value     string    `json:"token"`      // The token value; unique within a user's token set.
	Platform  Platform  `json:"platform"`   // Platform family that issued the token.
	IssuedAt  time.Time `json:"issued_at"`  // First time the value was registered for the user.
	UpdatedAt time.Time `json:"updated_at"` // Last registration time, assigned by the store.
}

// TokenPrefix returns a short, log-safe prefix of a token value.
func TokenPrefix(value string) string {
	return value[:min(10, len(value))]
}
