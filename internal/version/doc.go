// Package version exposes build metadata of the countdown binary.
//
// Version, Commit and BuildTime are injected at build time via -ldflags
// ("-X github.com/oshokin/countdown/internal/version.Version=...").
package version
