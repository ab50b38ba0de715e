// Package constants holds configuration values shared across layers.
package constants

const (
	// EnvDevelop is the env name used on developer machines.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// DefaultMaxBatchSize bounds the number of NFTs minted by one batch request.
	DefaultMaxBatchSize = 100
)
