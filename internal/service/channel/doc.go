// Package channel reduces Rust release manifests to the version and target
// list the site shows for each release channel.
//
// Manifests are TOML. Go maps lose key order, so the order of
// [pkg.rust.target.<triple>] tables is recovered separately with the
// go-toml unstable parser and used to order the available targets.
package channel
