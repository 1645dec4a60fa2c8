// Package logger wraps zap with a global sugared logger that writes
// diagnostics to stderr, plus context helpers (ToContext, FromContext,
// WithName, WithKV) so each pipeline stage logs under its own name.
package logger
