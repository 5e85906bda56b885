package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultTopologyTTLMinutes = 15

// Load reads the application configuration from config.yml (if present) and
// the environment, and validates it. Environment variables BA_CLIENT_ID,
// BA_CLIENT_SECRET and BA_API_URL override file values; a .env file is
// honored when present. Missing credentials are a fatal configuration error
// raised before any network call.
func Load() (AppConfig, error) {
	// .env is optional; real env vars still win inside godotenv.
	_ = godotenv.Load()

	var cfg AppConfig
	paths := []string{"config.yml", "./config/config.yml"}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", p, err)
		}
		break
	}

	if v := os.Getenv("BA_CLIENT_ID"); v != "" {
		cfg.GCBA.ClientID = v
	}
	if v := os.Getenv("BA_CLIENT_SECRET"); v != "" {
		cfg.GCBA.ClientSecret = v
	}
	if v := os.Getenv("BA_API_URL"); v != "" {
		cfg.GCBA.BaseURL = v
	}
	if v := os.Getenv("SOFSE_API_URL"); v != "" {
		cfg.SOFSE.BaseURL = v
	}

	if cfg.Cache.TopologyTTLMinutes == 0 {
		cfg.Cache.TopologyTTLMinutes = defaultTopologyTTLMinutes
	}

	v := validator.New()
	if err := v.Struct(cfg.GCBA); err != nil {
		return AppConfig{}, fmt.Errorf("missing BA_CLIENT_ID or BA_CLIENT_SECRET: %w", err)
	}
	if err := v.Struct(cfg.SOFSE); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.Cache); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}
