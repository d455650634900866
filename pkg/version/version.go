// Package version exposes the build version of unitconv.
package version

// version is overridden at build time:
//
//	go build -ldflags "-X github.com/rshade/unitconv/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Set via ldflags.
var version = "dev"

// GetVersion returns the build version, "dev" for local builds.
func GetVersion() string {
	return version
}
