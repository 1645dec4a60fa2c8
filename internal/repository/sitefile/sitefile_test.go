package sitefile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/rust-site-config/internal/domain/site"
)

const tiersDocument = `tier1:
  description: Guaranteed to work.
  platforms:
    - tuple: x86_64-unknown-linux-gnu
      std: "✓"
      rustc: "✓"
      cargo: "✓"
      notes: 64-bit Linux
  footnotes: ""
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

// TestTierFile_Load decodes a tier description.
func TestTierFile_Load(t *testing.T) {
	t.Parallel()

	tiers, err := NewTierFile(writeFile(t, "tiers.yaml", tiersDocument)).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"tier1"}, tiers.Names())
	require.Equal(t, "x86_64-unknown-linux-gnu", tiers[0].Tier.Platforms[0].Tuple)
}

// TestTierFile_Errors classifies missing, empty and malformed files.
func TestTierFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewTierFile(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	require.ErrorIs(t, err, site.ErrIO)

	_, err = NewTierFile(writeFile(t, "empty.yaml", "")).Load(context.Background())
	require.ErrorIs(t, err, site.ErrParse)

	_, err = NewTierFile(writeFile(t, "null.yaml", "~\n")).Load(context.Background())
	require.ErrorIs(t, err, site.ErrParse)

	coerced := strings.Replace(tiersDocument, `std: "✓"`, "std: true", 1)
	_, err = NewTierFile(writeFile(t, "coerced.yaml", coerced)).Load(context.Background())
	require.ErrorIs(t, err, site.ErrParse)

	_, err = NewTierFile(writeFile(t, "list.yaml", "- tier1\n")).Load(context.Background())
	require.ErrorIs(t, err, site.ErrParse)

	_, err = NewTierFile(writeFile(t, "broken.yaml", "tier1: [unclosed")).Load(context.Background())
	require.ErrorIs(t, err, site.ErrParse)
}

// TestConfigFile_Save writes the document and replaces earlier contents.
func TestConfigFile_Save(t *testing.T) {
	t.Parallel()

	tiers, err := NewTierFile(writeFile(t, "tiers.yaml", tiersDocument)).Load(context.Background())
	require.NoError(t, err)

	path := writeFile(t, "_config.yml", "stale: true\n")
	channels := site.Channels{
		{Name: "stable", Summary: site.ChannelSummary{Version: "1.80.0", Platforms: []string{"x86_64-unknown-linux-gnu"}}},
	}

	out := NewConfigFile(path)
	require.Equal(t, path, out.Path())
	require.NoError(t, out.Save(context.Background(), site.NewConfig([]string{"a", "a"}, channels, tiers)))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(contents), "stale")

	var decoded struct {
		Exclude []string       `yaml:"exclude"`
		Rustup  []string       `yaml:"rustup"`
		Tiers   map[string]any `yaml:"tiers"`
	}
	require.NoError(t, yaml.Unmarshal(contents, &decoded))
	require.Equal(t, []string{"target", "vendor"}, decoded.Exclude)
	require.Equal(t, []string{"a", "a"}, decoded.Rustup)

	var want map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(tiersDocument), &want))
	require.Equal(t, want, decoded.Tiers)
}

// TestConfigFile_SaveIOError reports unwritable destinations as I/O errors.
func TestConfigFile_SaveIOError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "_config.yml")

	err := NewConfigFile(path).Save(context.Background(), site.NewConfig(nil, nil, nil))
	require.ErrorIs(t, err, site.ErrIO)
}
