package entity

// AuthorizationStatus is the answer to a notification permission request.
type AuthorizationStatus string

const (
	AuthorizationNotDetermined AuthorizationStatus = "notDetermined"
	AuthorizationDenied        AuthorizationStatus = "denied"
	AuthorizationAuthorized    AuthorizationStatus = "authorized"
	AuthorizationProvisional   AuthorizationStatus = "provisional"
)

// ParseAuthorizationStatus maps config and bridge spellings onto a status.
func ParseAuthorizationStatus(s string) AuthorizationStatus {
	switch s {
	case "granted", "authorized":
		return AuthorizationAuthorized
	case "provisional":
		return AuthorizationProvisional
	case "denied":
		return AuthorizationDenied
	default:
		return AuthorizationNotDetermined
	}
}

// IsGranted reports whether the device may receive pushes.
func (s AuthorizationStatus) IsGranted() bool {
	return s == AuthorizationAuthorized || s == AuthorizationProvisional
}

// PermissionOptions lists what is requested from the user.
type PermissionOptions struct {
	Alert         bool `json:"alert"`
	Badge         bool `json:"badge"`
	Sound         bool `json:"sound"`
	CriticalAlert bool `json:"critical_alert"` // SOS alerts bypass Do-Not-Disturb where supported.
}

// NotificationSettings is the platform's answer to a permission request.
type NotificationSettings struct {
	Status        AuthorizationStatus `json:"status"`
	CriticalAlert bool                `json:"critical_alert"`
}
