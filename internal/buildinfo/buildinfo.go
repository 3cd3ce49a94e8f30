// Package buildinfo formats and validates the tool's own version string
// for the metainfo `created by` field.
package buildinfo

import (
	"fmt"

	"github.com/blang/semver"
)

// ToolName is the identifier written ahead of the version in `created by`.
const ToolName = "torrentsmith"

// Version is overridden at link time via -ldflags; "dev" is the fallback
// for local builds.
var Version = "dev"

// CreatedBy formats the `created by` string: `<tool> <semver>`. An
// unparsable Version still produces a string (creation must never fail
// because of its own version metadata) but falls back to the raw value.
func CreatedBy() string {
	v, err := semver.ParseTolerant(Version)
	if err != nil {
		return fmt.Sprintf("%s %s", ToolName, Version)
	}
	return fmt.Sprintf("%s %s", ToolName, v.String())
}

// IsPrerelease reports whether Version parses as a semver pre-release
// (e.g. "1.2.0-rc1"), so --show summaries can flag non-stable builds.
// An unparsable Version is treated as stable.
func IsPrerelease() bool {
	v, err := semver.ParseTolerant(Version)
	if err != nil {
		return false
	}
	return len(v.Pre) > 0
}
