// Package logger wraps zap with a global sugared logger and context helpers.
//
// Logs are written to stderr so they never interleave with the countdown
// rendered on stdout. Components take a context and pull their logger from
// it (FromContext), letting callers scope names and fields (WithName, WithKV).
package logger
