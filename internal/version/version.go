// Package version reports the build version of the server.
package version

import (
	goversion "github.com/hashicorp/go-version"
)

// Version is overridden at build time with
// -ldflags "-X github.com/nulzo/openai-mock/internal/version.Version=v1.2.3".
var Version = "v0.1.0"

const fallback = "0.0.0-dev"

// Current returns Version in canonical semver form without the leading "v",
// or 0.0.0-dev when the build string is not a version.
func Current() string {
	return normalize(Version)
}

func normalize(raw string) string {
	v, err := goversion.NewSemver(raw)
	if err != nil {
		return fallback
	}
	return v.String()
}
