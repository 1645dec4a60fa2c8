package channel

import (
	"context"
	"fmt"

	"github.com/oshokin/rust-site-config/internal/domain/site"
	"github.com/oshokin/rust-site-config/internal/logger"
)

// Fetcher retrieves a whole remote resource.
type Fetcher interface {
	GetBytes(ctx context.Context, url string) ([]byte, error)
}

// URLFunc builds the manifest URL of a channel.
type URLFunc func(channel string) string

// Client fetches and summarizes release manifests.
type Client struct {
	fetcher Fetcher
	url     URLFunc
}

// NewClient returns a Client resolving manifest URLs with url.
func NewClient(fetcher Fetcher, url URLFunc) *Client {
	return &Client{
		fetcher: fetcher,
		url:     url,
	}
}

// Fetch downloads the manifest of one channel and summarizes it.
func (c *Client) Fetch(ctx context.Context, name string) (site.ChannelSummary, error) {
	ctx = logger.WithKV(ctx, "channel", name)
	url := c.url(name)

	logger.DebugKV(ctx, "Fetching channel manifest", "url", url)

	data, err := c.fetcher.GetBytes(ctx, url)
	if err != nil {
		return site.ChannelSummary{}, fmt.Errorf("channel %s: %w", name, err)
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return site.ChannelSummary{}, fmt.Errorf("channel %s: %w", name, err)
	}

	summary := manifest.Summarize()

	logger.Infof(ctx, "Found %d available of %d targets for %s channel (v%s)",
		len(summary.Platforms), len(manifest.Targets), name, manifest.Version)

	return summary, nil
}

// FetchAll fetches every site channel one after another and stops at the first error.
func (c *Client) FetchAll(ctx context.Context) (site.Channels, error) {
	ctx = logger.WithName(ctx, "channel")

	names := site.ChannelNames()
	channels := make(site.Channels, 0, len(names))

	for _, name := range names {
		summary, err := c.Fetch(ctx, name)
		if err != nil {
			return nil, err
		}

		channels = append(channels, site.NamedChannel{Name: name, Summary: summary})
	}

	return channels, nil
}
