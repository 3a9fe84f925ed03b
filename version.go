// Package lineedit is a single-line text input for Bubble Tea programs.
//
// The widget lives in the editor package and keeps its text and cursor in a
// buffer.Buffer. The button package provides a pressable companion widget,
// and events carries notifications from both to observers.
package lineedit

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// semver is a parsed SemVer 2.0.0 version.
type semver struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

func (s semver) String() string {
	v := strconv.Itoa(s.Major) + "." + strconv.Itoa(s.Minor) + "." + strconv.Itoa(s.Patch)
	if s.Pre != "" {
		v += "-" + s.Pre
	}
	if s.Build != "" {
		v += "+" + s.Build
	}
	return v
}

// parseSemver parses v (without a leading `v`). ok is false when v is not
// valid SemVer.
func parseSemver(v string) (s semver, ok bool) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return semver{}, false
	}
	var err error
	if s.Major, err = strconv.Atoi(m[1]); err != nil {
		return semver{}, false
	}
	if s.Minor, err = strconv.Atoi(m[2]); err != nil {
		return semver{}, false
	}
	if s.Patch, err = strconv.Atoi(m[3]); err != nil {
		return semver{}, false
	}
	s.Pre, s.Build = m[4], m[5]
	return s, true
}

// Version returns the library version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, ok := parseSemver(v)
	return ok
}
