package site

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ChannelSummary is what the site shows for one release channel.
type ChannelSummary struct {
	// Version is the release number without build metadata, e.g. "1.2.3".
	Version string `yaml:"vers"`
	// Platforms lists targets with an available rust package, in manifest order.
	Platforms []string `yaml:"platforms"`
}

// NamedChannel is a ChannelSummary with its channel name.
type NamedChannel struct {
	Name    string
	Summary ChannelSummary
}

// Channels maps channel names to summaries, preserving insertion order.
type Channels []NamedChannel

// Names returns channel names in order.
func (c Channels) Names() []string {
	names := make([]string, 0, len(c))
	for _, channel := range c {
		names = append(names, channel.Name)
	}

	return names
}

// Get returns the summary stored under name.
func (c Channels) Get(name string) (ChannelSummary, bool) {
	for _, channel := range c {
		if channel.Name == name {
			return channel.Summary, true
		}
	}

	return ChannelSummary{}, false
}

// MarshalYAML encodes the channels as a mapping in insertion order.
func (c Channels) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, channel := range c {
		summary := channel.Summary
		if summary.Platforms == nil {
			summary.Platforms = []string{}
		}

		var value yaml.Node
		if err := value.Encode(summary); err != nil {
			return nil, fmt.Errorf("channel %q: %w", channel.Name, err)
		}

		node.Content = append(node.Content, stringNode(channel.Name), &value)
	}

	return node, nil
}
