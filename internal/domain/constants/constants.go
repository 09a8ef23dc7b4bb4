// Package constants holds configuration values shared across packages.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Token store providers
const (
	StoreProviderFirestore = "firestore"
	StoreProviderPostgres  = "postgres"
)
