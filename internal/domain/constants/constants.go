// Package constants contains values shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers used to transport campground creation events.
const (
	// PubSubProviderInline runs the notification fan-out in-process.
	PubSubProviderInline = "inline"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Image store providers.
const (
	ImageStoreProviderBlob = "blob"
	ImageStoreProviderS3   = "s3"
)

// Geocoder providers.
const (
	GeocoderProviderGoogle = "google"
)

// Roles carried in access tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
