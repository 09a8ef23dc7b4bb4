package entity

// ManagerState is the lifecycle state of the token manager.
type ManagerState string

const (
	StateUninitialized ManagerState = "uninitialized"
	StateTokenPending  ManagerState = "tokenPending"
	StateActive        ManagerState = "active"
	StateDisabled      ManagerState = "disabled"
)

// PushStatus is a snapshot of the token manager.
type PushStatus struct {
	State       ManagerState `json:"state"`
	Initialized bool         `json:"initialized"`
	Platform    Platform     `json:"platform"`
	HasToken    bool         `json:"has_token"`
	TokenPrefix string       `json:"token_prefix,omitempty"`
}
