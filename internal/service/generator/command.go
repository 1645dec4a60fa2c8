package generator

import (
	"context"
	"fmt"

	"github.com/oshokin/rust-site-config/internal/config"
	"github.com/oshokin/rust-site-config/internal/domain/site"
	"github.com/oshokin/rust-site-config/internal/logger"
	"github.com/oshokin/rust-site-config/internal/repository/sitefile"
	"github.com/oshokin/rust-site-config/internal/service/channel"
	"github.com/oshokin/rust-site-config/internal/service/common"
	"github.com/oshokin/rust-site-config/internal/service/rustup"
)

// Options contains inputs for the generator entry point.
type Options struct {
	// ConfigPath is an optional settings file; empty means built-in defaults.
	ConfigPath string
	// TiersFile overrides the tier description path when set.
	TiersFile string
	// OutputFile overrides the output path when set.
	OutputFile string
}

// TierLoader reads the tier description.
type TierLoader interface {
	Load(ctx context.Context) (site.Tiers, error)
}

// TargetScanner lists the targets rustup-init is published for.
type TargetScanner interface {
	Targets(ctx context.Context) ([]string, error)
}

// ChannelFetcher summarizes every release channel.
type ChannelFetcher interface {
	FetchAll(ctx context.Context) (site.Channels, error)
}

// Emitter writes the assembled document.
type Emitter interface {
	Save(ctx context.Context, cfg *site.Config) error
}

// generator wires the pipeline steps together.
// It is unexported; callers should use Run.
type generator struct {
	tiers    TierLoader
	rustup   TargetScanner
	channels ChannelFetcher
	output   Emitter
}

// Run loads settings and generates the site configuration.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "rust-site-config")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if opts.TiersFile != "" {
		cfg.TiersFile = opts.TiersFile
	}

	if opts.OutputFile != "" {
		cfg.OutputFile = opts.OutputFile
	}

	if err = config.Validate(cfg); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}

	if err = newGenerator(cfg).Run(ctx); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Site configuration written", "path", cfg.OutputFile)

	return nil
}

// newGenerator builds the production pipeline for cfg.
func newGenerator(cfg *config.Config) *generator {
	client := common.NewClient(common.WithCallTimeout(cfg.Timeout))

	return &generator{
		tiers:    sitefile.NewTierFile(cfg.TiersFile),
		rustup:   rustup.NewScanner(client, cfg.RustupTargetsURL),
		channels: channel.NewClient(client, cfg.ChannelURL),
		output:   sitefile.NewConfigFile(cfg.OutputFile),
	}
}

// Run executes every step in order and stops at the first error.
func (g *generator) Run(ctx context.Context) error {
	logger.Debug(ctx, "Loading tiers")

	tiers, err := g.tiers.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tiers: %w", err)
	}

	logger.DebugKV(ctx, "Loaded tiers", "tiers", tiers.Names())

	targets, err := g.rustup.Targets(ctx)
	if err != nil {
		return fmt.Errorf("scan rustup targets: %w", err)
	}

	channels, err := g.channels.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch channels: %w", err)
	}

	if err = g.output.Save(ctx, site.NewConfig(targets, channels, tiers)); err != nil {
		return fmt.Errorf("emit site config: %w", err)
	}

	return nil
}
