package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the locations used by a single generator run.
type Config struct {
	// TiersFile is the local YAML document describing platform tiers.
	TiersFile string `yaml:"tiers_file"`
	// OutputFile is the Jekyll configuration written at the end of the run.
	OutputFile string `yaml:"output_file"`
	// RustupTargetsURL lists the object-storage paths published for rustup-init.
	RustupTargetsURL string `yaml:"rustup_targets_url"`
	// ChannelURLPrefix is prepended to the channel name to build a manifest URL.
	ChannelURLPrefix string `yaml:"channel_url_prefix"`
	// ChannelURLSuffix is appended to the channel name to build a manifest URL.
	ChannelURLSuffix string `yaml:"channel_url_suffix"`
	// Timeout bounds each HTTP request. Zero leaves requests unbounded.
	Timeout time.Duration `yaml:"timeout"`
}

const (
	// DefaultTiersFilename is the tier description shipped next to the site sources.
	DefaultTiersFilename = "tiers.yaml"

	// DefaultOutputFilename is the Jekyll configuration file.
	DefaultOutputFilename = "_config.yml"

	// DefaultRustupTargetsURL is the CloudFront invalidation list of the rustup repository.
	DefaultRustupTargetsURL = "https://raw.githubusercontent.com/rust-lang/rustup.rs/stable/ci/cloudfront-invalidation.txt"

	// DefaultChannelURLPrefix is the release manifest location without the channel name.
	DefaultChannelURLPrefix = "https://static.rust-lang.org/dist/channel-rust-"

	// DefaultChannelURLSuffix completes a release manifest URL.
	DefaultChannelURLSuffix = ".toml"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errPathRequired is returned when an input or output path is empty.
	errPathRequired = errors.New("path must be provided")
	// errBadScheme is returned for URLs that are not http or https.
	errBadScheme = errors.New("url scheme must be http or https")
	// errNegativeTimeout is returned for timeouts below zero.
	errNegativeTimeout = errors.New("timeout must not be negative")
)

// Default returns the settings of the published site build.
func Default() *Config {
	return &Config{
		TiersFile:        DefaultTiersFilename,
		OutputFile:       DefaultOutputFilename,
		RustupTargetsURL: DefaultRustupTargetsURL,
		ChannelURLPrefix: DefaultChannelURLPrefix,
		ChannelURLSuffix: DefaultChannelURLSuffix,
	}
}

// Load returns the defaults overlaid with the settings file at path.
// An empty path yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every path and URL is usable.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.TiersFile == "" {
		return fmt.Errorf("tiers file: %w", errPathRequired)
	}

	if cfg.OutputFile == "" {
		return fmt.Errorf("output file: %w", errPathRequired)
	}

	if cfg.Timeout < 0 {
		return errNegativeTimeout
	}

	if err := validateURL(cfg.RustupTargetsURL); err != nil {
		return fmt.Errorf("rustup targets url: %w", err)
	}

	// The suffix alone is not a URL; check a fully composed one instead.
	if err := validateURL(cfg.ChannelURL("stable")); err != nil {
		return fmt.Errorf("channel url: %w", err)
	}

	return nil
}

// ChannelURL builds the release manifest URL for the named channel.
func (c *Config) ChannelURL(channel string) string {
	return c.ChannelURLPrefix + channel + c.ChannelURLSuffix
}

func validateURL(raw string) error {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%q: %w", parsed.Scheme, errBadScheme)
	}

	return nil
}
