// Package version exposes build metadata injected through ldflags.
//
// Short is used in the HTTP User-Agent sent to the release servers; Full is
// printed by the `version` subcommand.
package version
