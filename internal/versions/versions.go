package versions

import "github.com/Masterminds/semver/v3"

var EmptyVersion = semver.MustParse("0.0.0")

// currentVersion is replaced at link time:
// -ldflags "-X github.com/rwx-cloud/justify/internal/versions.currentVersion=1.2.3"
var currentVersion = "0.0.0-dev"

func GetCliCurrentVersion() *semver.Version {
	return parseVersion(currentVersion)
}

func parseVersion(raw string) *semver.Version {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return EmptyVersion
	}
	return v
}
