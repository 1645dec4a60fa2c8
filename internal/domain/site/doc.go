// Package site contains the data written into the Jekyll configuration of
// the platform-support site.
//
// Tiers and Channels are ordered mappings: YAML keys are emitted in the order
// they were read or inserted, which the templates rely on for layout.
// The error kinds (ErrIO, ErrNetwork, ErrParse, ErrSerialization) classify
// every failure of a run and are matched with errors.Is.
package site
