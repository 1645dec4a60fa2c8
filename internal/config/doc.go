// Package config defines where the generator reads its inputs and writes its
// output, and helpers to load and validate those settings from YAML.
//
// The built-in defaults reproduce the fixed paths and URLs of the published
// site build, so running without a settings file needs no configuration.
package config
