// Package config loads the scraper's YAML configuration with sensible
// defaults when no file is present.
package config
