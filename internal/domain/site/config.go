package site

// Config is the Jekyll _config.yml document.
type Config struct {
	// Exclude lists paths Jekyll must not copy into the built site.
	Exclude []string `yaml:"exclude"`
	// Rustup lists targets with a published rustup-init, duplicates kept.
	Rustup []string `yaml:"rustup"`
	// Channels holds one summary per release channel.
	Channels Channels `yaml:"channels"`
	// Tiers is the tier description, passed through unchanged.
	Tiers Tiers `yaml:"tiers"`
}

// ChannelNames returns the release channels shown on the site, in display order.
func ChannelNames() []string {
	return []string{"stable", "beta", "nightly"}
}

// ExcludePatterns returns the paths excluded from the Jekyll build.
func ExcludePatterns() []string {
	return []string{"target", "vendor"}
}

// NewConfig assembles the output document from the pipeline results.
func NewConfig(rustup []string, channels Channels, tiers Tiers) *Config {
	if rustup == nil {
		rustup = []string{}
	}

	return &Config{
		Exclude:  ExcludePatterns(),
		Rustup:   rustup,
		Channels: channels,
		Tiers:    tiers,
	}
}
