// Package version exposes build metadata injected at link time.
package version

// Version is the application version, overridden via -ldflags at build time.
var Version = "dev"
