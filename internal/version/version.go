package version

import "github.com/arthur-debert/stencil/pkg/versions"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/stencil/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/stencil/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/stencil/internal/version.Date={{.Date}}
)

// IsDevBuild reports whether this binary was built without a release version
func IsDevBuild() bool {
	return !versions.LooksLikeRelease(Version)
}
