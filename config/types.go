package config

// GCBAConfig contains credentials and base URL for the city transit API.
// ClientID and ClientSecret are appended as query parameters to every request.
type GCBAConfig struct {
	ClientID     string `yaml:"client_id" validate:"required"`
	ClientSecret string `yaml:"client_secret" validate:"required"`
	BaseURL      string `yaml:"baseURL" validate:"omitempty,url"`
}

// SOFSEConfig contains settings for the train operator API. Credentials are
// derived from the current date, not configured, so only the base URL is
// tunable.
type SOFSEConfig struct {
	BaseURL string `yaml:"baseURL" validate:"omitempty,url"`
}

// CacheConfig controls the in-process train topology cache.
type CacheConfig struct {
	TopologyTTLMinutes int `yaml:"topologyTTLMinutes" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	GCBA  GCBAConfig  `yaml:"gcba"`
	SOFSE SOFSEConfig `yaml:"sofse"`
	Cache CacheConfig `yaml:"cache"`
}
