package channel

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/oshokin/rust-site-config/internal/domain/site"
)

var errMissingField = errors.New("missing field")

// rawManifest mirrors the part of channel-rust-<name>.toml the site needs.
// Pointers distinguish absent fields from zero values.
type rawManifest struct {
	Pkg *struct {
		Rust *struct {
			Version *string               `toml:"version"`
			Target  map[string]*rawTarget `toml:"target"`
		} `toml:"rust"`
	} `toml:"pkg"`
}

type rawTarget struct {
	Available *bool `toml:"available"`
}

// Target is the availability of the rust package for one target.
type Target struct {
	Name      string
	Available bool
}

// Manifest is the rust package of a release manifest.
type Manifest struct {
	// Version is the raw version string, e.g. "1.2.3 (abcdef 2024-01-01)".
	Version string
	// Targets are listed in the order they appear in the document.
	Targets []Target
}

// ParseManifest decodes a release manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw rawManifest
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode manifest: %w", site.ErrParse, err)
	}

	switch {
	case raw.Pkg == nil:
		return nil, fmt.Errorf("%w: %w: pkg", site.ErrParse, errMissingField)
	case raw.Pkg.Rust == nil:
		return nil, fmt.Errorf("%w: %w: pkg.rust", site.ErrParse, errMissingField)
	case raw.Pkg.Rust.Version == nil:
		return nil, fmt.Errorf("%w: %w: pkg.rust.version", site.ErrParse, errMissingField)
	case raw.Pkg.Rust.Target == nil:
		return nil, fmt.Errorf("%w: %w: pkg.rust.target", site.ErrParse, errMissingField)
	}

	order, err := targetOrder(data)
	if err != nil {
		return nil, fmt.Errorf("%w: scan manifest: %w", site.ErrParse, err)
	}

	order = completeOrder(order, raw.Pkg.Rust.Target)
	targets := make([]Target, 0, len(order))

	for _, name := range order {
		target := raw.Pkg.Rust.Target[name]
		if target == nil || target.Available == nil {
			return nil, fmt.Errorf("%w: %w: pkg.rust.target.%s.available", site.ErrParse, errMissingField, name)
		}

		targets = append(targets, Target{Name: name, Available: *target.Available})
	}

	return &Manifest{
		Version: *raw.Pkg.Rust.Version,
		Targets: targets,
	}, nil
}

// Summarize reduces the manifest to what the site shows.
func (m *Manifest) Summarize() site.ChannelSummary {
	platforms := make([]string, 0, len(m.Targets))

	for _, target := range m.Targets {
		if target.Available {
			platforms = append(platforms, target.Name)
		}
	}

	return site.ChannelSummary{
		Version:   ShortVersion(m.Version),
		Platforms: platforms,
	}
}

// ShortVersion drops everything from the first space on,
// so "1.2.3 (abcdef 2024-01-01)" becomes "1.2.3".
func ShortVersion(version string) string {
	short, _, _ := strings.Cut(version, " ")

	return short
}

// targetOrder lists target names under pkg.rust.target in the order their
// tables or dotted keys first appear. Targets nested in an inline table are
// not reported.
func targetOrder(data []byte) ([]string, error) {
	var (
		parser  unstable.Parser
		current []string
		order   []string
		seen    = make(map[string]struct{})
	)

	record := func(path []string) {
		if len(path) < 4 || path[0] != "pkg" || path[1] != "rust" || path[2] != "target" {
			return
		}

		if _, ok := seen[path[3]]; ok {
			return
		}

		seen[path[3]] = struct{}{}
		order = append(order, path[3])
	}

	parser.Reset(data)

	for parser.NextExpression() {
		expr := parser.Expression()

		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			current = keyParts(expr.Key())
			record(current)
		case unstable.KeyValue:
			record(append(slices.Clone(current), keyParts(expr.Key())...))
		default:
		}
	}

	if err := parser.Error(); err != nil {
		return nil, err
	}

	return order, nil
}

// completeOrder drops names absent from targets and appends the targets
// whose position is unknown in lexical order.
func completeOrder(order []string, targets map[string]*rawTarget) []string {
	complete := make([]string, 0, len(targets))
	listed := make(map[string]struct{}, len(order))

	for _, name := range order {
		if _, ok := targets[name]; ok {
			complete = append(complete, name)
			listed[name] = struct{}{}
		}
	}

	rest := make([]string, 0, len(targets)-len(complete))

	for name := range targets {
		if _, ok := listed[name]; !ok {
			rest = append(rest, name)
		}
	}

	slices.Sort(rest)

	return append(complete, rest...)
}

func keyParts(it unstable.Iterator) []string {
	var parts []string

	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}

	return parts
}
