package site

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const tiersDocument = `tier3:
  description: Targets with no official support.
  platforms:
    - tuple: wasm64-unknown-unknown
      std: "?"
      notes: ""
  footnotes: ""
tier1:
  description: Guaranteed to work.
  platforms:
    - tuple: x86_64-unknown-linux-gnu
      std: "✓"
      rustc: "✓"
      cargo: "✓"
      notes: 64-bit Linux (kernel 3.2+, glibc 2.17+)
    - tuple: i686-pc-windows-msvc
      std: "✓"
      rustc: "✓"
      notes: 32-bit MSVC
  footnotes: "[^1]: Tested in CI."
`

// TestTiers_PreservesOrder verifies tier names keep document order, not lexical order.
func TestTiers_PreservesOrder(t *testing.T) {
	t.Parallel()

	var tiers Tiers
	require.NoError(t, yaml.Unmarshal([]byte(tiersDocument), &tiers))
	require.Equal(t, []string{"tier3", "tier1"}, tiers.Names())

	tier1 := tiers[1].Tier
	require.Len(t, tier1.Platforms, 2)
	require.Equal(t, "x86_64-unknown-linux-gnu", tier1.Platforms[0].Tuple)
	require.NotNil(t, tier1.Platforms[0].Cargo)
	require.Nil(t, tier1.Platforms[1].Cargo)
	require.Equal(t, "[^1]: Tested in CI.", tier1.Footnotes)
}

// TestTiers_RoundTrip ensures re-encoding yields a structurally equal document.
func TestTiers_RoundTrip(t *testing.T) {
	t.Parallel()

	var tiers Tiers
	require.NoError(t, yaml.Unmarshal([]byte(tiersDocument), &tiers))

	encoded, err := yaml.Marshal(tiers)
	require.NoError(t, err)

	var want, got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(tiersDocument), &want))
	require.NoError(t, yaml.Unmarshal(encoded, &got))
	require.Equal(t, want, got)

	var again Tiers
	require.NoError(t, yaml.Unmarshal(encoded, &again))
	require.Equal(t, tiers, again)
}

// TestTiers_RejectsBadShapes covers documents that do not describe tiers.
func TestTiers_RejectsBadShapes(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"not a mapping":     "- tier1\n- tier2\n",
		"duplicate tier":    "a: {description: x, platforms: [], footnotes: y}\na: {description: x, platforms: [], footnotes: y}\n",
		"missing footnotes": "a: {description: x, platforms: []}\n",
		"tier is scalar":    "a: hello\n",
		"missing tuple":     "a: {description: x, platforms: [{std: y, notes: z}], footnotes: y}\n",
		"platforms scalar":  "a: {description: x, platforms: nope, footnotes: y}\n",
		"std boolean":       "a: {description: x, platforms: [{tuple: t, std: true, notes: z}], footnotes: y}\n",
		"rustc number":      "a: {description: x, platforms: [{tuple: t, std: s, rustc: 1, notes: z}], footnotes: y}\n",
		"cargo null":        "a: {description: x, platforms: [{tuple: t, std: s, cargo: ~, notes: z}], footnotes: y}\n",
		"notes null":        "a: {description: x, platforms: [{tuple: t, std: s, notes: ~}], footnotes: y}\n",
		"notes empty":       "a: {description: x, platforms: [{tuple: t, std: s, notes: }], footnotes: y}\n",
		"footnotes null":    "a: {description: x, platforms: [], footnotes: ~}\n",
		"description list":  "a: {description: [x], platforms: [], footnotes: y}\n",
	}

	for name, document := range cases {
		var tiers Tiers
		require.Error(t, yaml.Unmarshal([]byte(document), &tiers), name)
	}
}

// TestTiers_Aliases ensures anchored tiers decode like inline ones.
func TestTiers_Aliases(t *testing.T) {
	t.Parallel()

	document := "a: &shared {description: x, platforms: [], footnotes: y}\nb: *shared\n"

	var tiers Tiers
	require.NoError(t, yaml.Unmarshal([]byte(document), &tiers))
	require.Equal(t, []string{"a", "b"}, tiers.Names())
	require.Equal(t, tiers[0].Tier, tiers[1].Tier)
}

// TestTiers_QuotedScalarsStayStrings accepts quoted values that look like other types.
func TestTiers_QuotedScalarsStayStrings(t *testing.T) {
	t.Parallel()

	document := `a:
  description: "1"
  platforms:
    - tuple: t
      std: "true"
      rustc: "1"
      notes: ""
  footnotes: ""
`

	var tiers Tiers
	require.NoError(t, yaml.Unmarshal([]byte(document), &tiers))

	platform := tiers[0].Tier.Platforms[0]
	require.Equal(t, "true", platform.Std)
	require.Equal(t, "1", *platform.Rustc)

	encoded, err := yaml.Marshal(tiers)
	require.NoError(t, err)

	var want, got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(document), &want))
	require.NoError(t, yaml.Unmarshal(encoded, &got))
	require.Equal(t, want, got)
}
