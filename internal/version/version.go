// Package version carries the build version, set with
// -ldflags "-X fqfilter/internal/version.Version=...".
package version

var Version = "dev"
