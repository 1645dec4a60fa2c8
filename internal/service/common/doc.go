// Package common holds helpers shared by several services.
//
// It provides a small HTTP client over hashicorp/go-cleanhttp that applies a
// per-call timeout, identifies the tool in User-Agent and reports every
// failure as site.ErrNetwork.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
