package maps

// EmbedProvider builds iframe URLs for a route map. Nothing is fetched; the
// browser loads the URL.
type EmbedProvider interface {
	// DirectionsEmbedURL reports false when the provider cannot build a URL
	// for the given endpoints.
	DirectionsEmbedURL(origin, destination string) (string, bool)
}
