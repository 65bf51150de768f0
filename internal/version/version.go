// Package version implements the semantic-version arithmetic behind product
// releases: standard major/minor/patch increments plus an incremental
// build-metadata counter for non-production builds.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	cerrors "github.com/concon121/aws-conduit/internal/errors"
)

// Kind selects how a release advances the version.
type Kind string

const (
	// Build increments the build-metadata counter ("1.2.3" -> "1.2.3+build.1").
	Build Kind = "build"
	// Major increments the major version and resets the lower fields.
	Major Kind = "major"
	// Minor increments the minor version and resets the patch field.
	Minor Kind = "minor"
	// Patch increments the patch version.
	Patch Kind = "patch"
)

// buildMarker is the metadata prefix tagging incremental builds.
const buildMarker = "build"

// ParseKind maps a command-line action to a release kind. The empty string
// means an incremental build.
func ParseKind(action string) (Kind, error) {
	switch action {
	case "":
		return Build, nil
	case string(Build), string(Major), string(Minor), string(Patch):
		return Kind(action), nil
	default:
		return "", cerrors.NewError("version.parse-kind",
			fmt.Errorf("%w: not a valid release kind: %s", cerrors.ErrInvalidInput, action))
	}
}

// Bump computes the next version for the given release kind.
func Bump(kind Kind, current string) (string, error) {
	v, err := semver.NewVersion(current)
	if err != nil {
		return "", cerrors.NewError("version.bump",
			fmt.Errorf("%w: invalid version %q: %v", cerrors.ErrInvalidInput, current, err))
	}
	switch kind {
	case Build:
		return bumpBuild(v)
	case Major:
		next := v.IncMajor()
		return next.String(), nil
	case Minor:
		next := v.IncMinor()
		return next.String(), nil
	case Patch:
		next := v.IncPatch()
		return next.String(), nil
	default:
		return "", cerrors.NewError("version.bump",
			fmt.Errorf("%w: unknown release kind %q", cerrors.ErrInvalidInput, kind))
	}
}

// bumpBuild appends or increments the build-metadata counter, leaving the
// core version untouched.
func bumpBuild(v *semver.Version) (string, error) {
	counter := 1
	if meta := v.Metadata(); meta != "" {
		numeric, ok := strings.CutPrefix(meta, buildMarker+".")
		if !ok {
			return "", cerrors.NewError("version.bump",
				fmt.Errorf("%w: unrecognized build metadata %q", cerrors.ErrInvalidInput, meta))
		}
		n, err := strconv.Atoi(numeric)
		if err != nil {
			return "", cerrors.NewError("version.bump",
				fmt.Errorf("%w: unrecognized build metadata %q", cerrors.ErrInvalidInput, meta))
		}
		counter = n + 1
	}
	next, err := v.SetMetadata(fmt.Sprintf("%s.%d", buildMarker, counter))
	if err != nil {
		return "", cerrors.NewError("version.bump", err)
	}
	return next.String(), nil
}

// IsBuild reports whether a version name carries the build-metadata marker.
// Unparseable names fall back to a substring check so remote artifacts with
// unexpected version strings are still classified.
func IsBuild(name string) bool {
	v, err := semver.NewVersion(name)
	if err != nil {
		return strings.Contains(name, buildMarker)
	}
	return strings.HasPrefix(v.Metadata(), buildMarker)
}

// Less reports whether a is strictly less than b, comparing core versions
// per semver precedence (build metadata is ignored).
func Less(a, b string) (bool, error) {
	va, err := semver.NewVersion(a)
	if err != nil {
		return false, cerrors.NewError("version.compare",
			fmt.Errorf("%w: invalid version %q: %v", cerrors.ErrInvalidInput, a, err))
	}
	vb, err := semver.NewVersion(b)
	if err != nil {
		return false, cerrors.NewError("version.compare",
			fmt.Errorf("%w: invalid version %q: %v", cerrors.ErrInvalidInput, b, err))
	}
	return va.LessThan(vb), nil
}
