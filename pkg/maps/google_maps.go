package maps

import (
	"net/url"
	"strings"
)

const DefaultGoogleEmbedBaseURL = "https://www.google.com/maps/embed/v1/directions"

// GoogleMapsEmbed targets the Maps Embed API directions mode.
type GoogleMapsEmbed struct {
	apiKey  string
	baseURL string
}

func NewGoogleMapsEmbed(apiKey, baseURL string) *GoogleMapsEmbed {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultGoogleEmbedBaseURL
	}
	return &GoogleMapsEmbed{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: baseURL,
	}
}

// Configured reports whether an API key is set.
func (g *GoogleMapsEmbed) Configured() bool {
	return g.apiKey != ""
}

func (g *GoogleMapsEmbed) DirectionsEmbedURL(origin, destination string) (string, bool) {
	if !g.Configured() || strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return "", false
	}

	var b strings.Builder
	b.WriteString(g.baseURL)
	b.WriteString("?key=")
	b.WriteString(url.QueryEscape(g.apiKey))
	b.WriteString("&origin=")
	b.WriteString(EncodeComponent(origin))
	b.WriteString("&destination=")
	b.WriteString(EncodeComponent(destination))
	return b.String(), true
}

// EncodeComponent escapes s as a query value with spaces as %20.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
