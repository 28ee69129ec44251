package pkgmanager

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// hintOrder is the substring search order applied to the user-agent hint.
var hintOrder = []Manager{PNPM, Yarn, Bun}

// managerFromHint returns the first manager whose name occurs in hint.
func managerFromHint(hint string) (Manager, bool) {
	if hint == "" {
		return "", false
	}
	for _, m := range hintOrder {
		if strings.Contains(hint, string(m)) {
			return m, true
		}
	}
	return "", false
}

// ParseUserAgent reads the leading "<name>/<version>" token of a package
// manager user agent such as "pnpm/9.1.0 npm/? node/v20.11.0 linux x64".
// The version is nil when it is missing or not valid semver.
func ParseUserAgent(ua string) (Manager, *semver.Version, bool) {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return "", nil, false
	}

	name, version, _ := strings.Cut(fields[0], "/")
	m, err := Parse(name)
	if err != nil {
		return "", nil, false
	}

	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return m, nil, true
	}
	return m, v, true
}
