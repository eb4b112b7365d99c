package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultURL      = "https://leekduck.com/events/"
	DefaultTimezone = "Europe/Brussels"
	DefaultOutput   = "events.ics"

	defaultFetchDelayMS = 500
)

// Config is the scraper configuration.
type Config struct {
	// URL is the events listing page to scrape.
	URL string `yaml:"url"`

	// Timezone is the IANA reference timezone in which all "Local Time"
	// date strings on the source site are interpreted.
	Timezone string `yaml:"timezone"`

	// Output is the path of the generated .ics file.
	Output string `yaml:"output"`

	// FetchDelayMS is the courtesy delay in milliseconds before each
	// detail-page fetch.
	FetchDelayMS int `yaml:"fetch_delay_ms"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		URL:          DefaultURL,
		Timezone:     DefaultTimezone,
		Output:       DefaultOutput,
		FetchDelayMS: defaultFetchDelayMS,
	}
}

// Load reads configuration from a YAML file. An empty path or a missing
// file yields the defaults; a present but unreadable or invalid file is
// an error. Fields omitted from the file keep their default values.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	conf.applyDefaults()
	return conf, nil
}

// applyDefaults restores defaults for fields left empty in the file.
func (c *Config) applyDefaults() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.FetchDelayMS < 0 {
		c.FetchDelayMS = defaultFetchDelayMS
	}
}

// FetchDelay returns the courtesy delay as a duration.
func (c *Config) FetchDelay() time.Duration {
	return time.Duration(c.FetchDelayMS) * time.Millisecond
}
