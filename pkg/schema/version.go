package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the schema format version written by ToDescription.
const Version = "9.0.0"

// WarningKind classifies a schema version mismatch.
type WarningKind string

// Version warning kinds.
const (
	// WarnUpgrade means the saved schema was written by a newer format
	// than this build supports.
	WarnUpgrade WarningKind = "upgrade"
	// WarnOutdated means the saved schema predates the supported format.
	WarnOutdated WarningKind = "outdated"
)

// VersionWarning is advisory: loading always proceeds best-effort after a
// version mismatch, it never hard-fails on version alone.
type VersionWarning struct {
	Kind      WarningKind
	Saved     string
	Supported string
}

// Message returns the warning text.
func (w *VersionWarning) Message() string {
	if w.Kind == WarnUpgrade {
		return fmt.Sprintf("the schema version of the saved typing information %s is greater than the latest supported %s; attempting to load anyway",
			w.Saved, w.Supported)
	}
	return fmt.Sprintf("the schema version of the saved typing information %s is no longer supported by this version; attempting to load anyway",
		w.Saved)
}

// CheckVersion compares a saved semantic version string against the running
// schema version. A saved (major, minor) lexicographically greater than
// supported yields an upgrade warning; strictly lower yields an outdated
// warning; patch-only differences never warn. The only error is an
// unparsable version string.
func CheckVersion(saved string) (*VersionWarning, error) {
	savedMajor, savedMinor, _, err := parseVersion(saved)
	if err != nil {
		return nil, err
	}
	curMajor, curMinor, _, err := parseVersion(Version)
	if err != nil {
		return nil, err
	}

	switch {
	case savedMajor > curMajor || (savedMajor == curMajor && savedMinor > curMinor):
		return &VersionWarning{Kind: WarnUpgrade, Saved: saved, Supported: Version}, nil
	case savedMajor < curMajor || (savedMajor == curMajor && savedMinor < curMinor):
		return &VersionWarning{Kind: WarnOutdated, Saved: saved, Supported: Version}, nil
	}
	return nil, nil
}

func parseVersion(v string) (major, minor, patch int, err error) {
	parts := strings.Split(strings.TrimSpace(v), ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("unable to parse schema version %q: expected major.minor.patch", v)
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, convErr := strconv.Atoi(part)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("unable to parse schema version %q: %w", v, convErr)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
