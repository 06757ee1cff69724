package config

type MapsConfig struct {
	Provider     string            `yaml:"provider"`
	EmbedBaseURL string            `yaml:"embed_base_url"`
	GoogleMaps   *GoogleMapsConfig `yaml:"google_maps"`
}

type GoogleMapsConfig struct {
	APIKey string `yaml:"api_key"`
}

func defaultMapsConfig() *MapsConfig {
	return &MapsConfig{
		Provider:     "google",
		EmbedBaseURL: "https://www.google.com/maps/embed/v1/directions",
		GoogleMaps:   &GoogleMapsConfig{},
	}
}

func loadMapsConfig(m *MapsConfig) {
	m.Provider = getEnv("MAPS_PROVIDER", m.Provider)
	m.EmbedBaseURL = getEnv("MAPS_EMBED_BASE_URL", m.EmbedBaseURL)
	if m.GoogleMaps == nil {
		m.GoogleMaps = &GoogleMapsConfig{}
	}
	m.GoogleMaps.APIKey = getEnv("GOOGLE_MAPS_API_KEY", m.GoogleMaps.APIKey)
}
