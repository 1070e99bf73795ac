package toolchain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionToken finds the first MAJOR.MINOR.PATCH in a program's
// self-reported version text (e.g. "2.9.6", "v8.11.3", "@vue/cli 4.5.13").
var versionToken = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?`)

// Version is a semantic version reported by an external tool.
type Version struct {
	v *semver.Version
}

// ParseVersion extracts and parses the first semantic version found in text.
// A leading "v" is tolerated.
func ParseVersion(text string) (*Version, error) {
	token := versionToken.FindString(text)
	if token == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(text))
	}
	v, err := semver.NewVersion(strings.TrimPrefix(token, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", token, err)
	}
	return &Version{v: v}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(text string) *Version {
	v, err := ParseVersion(text)
	if err != nil {
		panic(err)
	}
	return v
}

// AtLeast reports whether v >= min using major.minor.patch ordering.
func (v *Version) AtLeast(min *Version) bool {
	if v == nil || min == nil {
		return false
	}
	return v.v.Compare(min.v) >= 0
}

func (v *Version) String() string {
	if v == nil {
		return ""
	}
	return v.v.String()
}
