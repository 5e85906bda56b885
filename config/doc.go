// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and the environment (with optional
// .env support) and validated using struct tags. City API credentials are
// required; everything else has working defaults.
package config
