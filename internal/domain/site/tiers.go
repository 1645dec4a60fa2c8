package site

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Platform is one row of a tier table.
type Platform struct {
	// Tuple is the target triple, e.g. x86_64-unknown-linux-gnu.
	Tuple string `yaml:"tuple"`
	// Std describes standard library support.
	Std string `yaml:"std"`
	// Rustc describes host compiler availability, when stated.
	Rustc *string `yaml:"rustc,omitempty"`
	// Cargo describes host cargo availability, when stated.
	Cargo *string `yaml:"cargo,omitempty"`
	// Notes is free text shown next to the target.
	Notes string `yaml:"notes"`
}

// Tier groups platforms sharing a support guarantee.
type Tier struct {
	Description string     `yaml:"description"`
	Platforms   []Platform `yaml:"platforms"`
	Footnotes   string     `yaml:"footnotes"`
}

// NamedTier is a Tier with the key it was stored under.
type NamedTier struct {
	Name string
	Tier Tier
}

// Tiers maps tier names to tiers, preserving document order.
type Tiers []NamedTier

// Names returns tier names in order.
func (t Tiers) Names() []string {
	names := make([]string, 0, len(t))
	for _, tier := range t {
		names = append(names, tier.Name)
	}

	return names
}

// UnmarshalYAML decodes a mapping of tier name to tier.
func (t *Tiers) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: tiers must be a mapping", value.Line)
	}

	tiers := make(Tiers, 0, len(value.Content)/2)
	seen := make(map[string]struct{}, len(value.Content)/2)

	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, tierNode := value.Content[i], resolve(value.Content[i+1])

		name := keyNode.Value
		if _, dup := seen[name]; dup {
			return fmt.Errorf("line %d: duplicate tier %q", keyNode.Line, name)
		}

		seen[name] = struct{}{}

		if err := checkTier(tierNode); err != nil {
			return fmt.Errorf("tier %q: %w", name, err)
		}

		var tier Tier
		if err := tierNode.Decode(&tier); err != nil {
			return fmt.Errorf("tier %q: %w", name, err)
		}

		tiers = append(tiers, NamedTier{Name: name, Tier: tier})
	}

	*t = tiers

	return nil
}

// MarshalYAML encodes the tiers as a mapping in their stored order.
func (t Tiers) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, tier := range t {
		var value yaml.Node
		if err := value.Encode(tier.Tier); err != nil {
			return nil, fmt.Errorf("tier %q: %w", tier.Name, err)
		}

		node.Content = append(node.Content, stringNode(tier.Name), &value)
	}

	return node, nil
}

// checkTier verifies the fields of a tier and its platforms are present and
// hold strings, so that decoding never coerces booleans, numbers or nulls.
func checkTier(node *yaml.Node) error {
	if err := requireKeys(node, "description", "platforms", "footnotes"); err != nil {
		return err
	}

	if err := requireStrings(node, false, "description", "footnotes"); err != nil {
		return err
	}

	platforms := resolve(findValue(node, "platforms"))
	if platforms.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: platforms must be a list", platforms.Line)
	}

	for _, platform := range platforms.Content {
		platform = resolve(platform)

		if err := requireKeys(platform, "tuple", "std", "notes"); err != nil {
			return fmt.Errorf("platform: %w", err)
		}

		if err := requireStrings(platform, false, "tuple", "std", "notes"); err != nil {
			return fmt.Errorf("platform: %w", err)
		}

		if err := requireStrings(platform, true, "rustc", "cargo"); err != nil {
			return fmt.Errorf("platform: %w", err)
		}
	}

	return nil
}

// requireStrings fails if any of keys holds something other than a string.
// With optional set, absent keys are accepted.
func requireStrings(node *yaml.Node, optional bool, keys ...string) error {
	for _, key := range keys {
		value := resolve(findValue(node, key))
		if value == nil {
			if optional {
				continue
			}

			return fmt.Errorf("line %d: missing field %q", node.Line, key)
		}

		if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
			return fmt.Errorf("line %d: field %q must be a string, got %s", value.Line, key, value.ShortTag())
		}
	}

	return nil
}

// requireKeys fails unless node is a mapping holding every key.
func requireKeys(node *yaml.Node, keys ...string) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	for _, key := range keys {
		if findValue(node, key) == nil {
			return fmt.Errorf("line %d: missing field %q", node.Line, key)
		}
	}

	return nil
}

func findValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}

// resolve follows anchors so aliased tiers are checked like inline ones.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
