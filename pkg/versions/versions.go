// Package versions decides whether a declared dependency version is
// acceptable for the version range a template requires.
package versions

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FileDependencyPrefix marks a specifier that points at a local path
const FileDependencyPrefix = "file"

var (
	// releasePattern is intentionally unanchored: any specifier containing a
	// three-part numeric version counts as a release.
	releasePattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

	versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?`)
)

// IsFileDependency reports whether spec refers to a local file or directory
func IsFileDependency(spec string) bool {
	return strings.HasPrefix(spec, FileDependencyPrefix)
}

// LooksLikeRelease reports whether spec contains a MAJOR.MINOR.PATCH version
func LooksLikeRelease(spec string) bool {
	return releasePattern.MatchString(spec)
}

// ExtractVersion pulls the first concrete version out of a specifier, so
// "^16.2.0" yields "16.2.0". It returns false when there is none.
func ExtractVersion(spec string) (string, bool) {
	v := versionPattern.FindString(spec)
	return v, v != ""
}

// IsValidVersion reports whether the version declared by a project satisfies
// the range the template requires. Specifiers that cannot be parsed on
// either side are never valid.
func IsValidVersion(project, required string) bool {
	raw, ok := ExtractVersion(project)
	if !ok {
		return false
	}

	version, err := semver.NewVersion(raw)
	if err != nil {
		return false
	}

	constraint, err := semver.NewConstraint(strings.TrimSpace(required))
	if err != nil {
		return false
	}

	return constraint.Check(version)
}
