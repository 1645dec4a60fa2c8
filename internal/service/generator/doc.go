// Package generator runs the site configuration pipeline: load tiers, scan
// rustup targets, fetch the release channels, assemble the document and
// write it. The first failing step aborts the run and nothing is written.
package generator
