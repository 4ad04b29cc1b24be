// internal/version/version.go
package version

// Version can be overridden at build time with
// -ldflags "-X biokit/internal/version.Version=...".
var Version = "0.1.0"
