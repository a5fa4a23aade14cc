package memstore

import "github.com/Masterminds/semver/v3"

func parseSemver(v string) (*semver.Version, error) {
	return semver.NewVersion(v)
}

func parseConstraint(c string) (*semver.Constraints, error) {
	return semver.NewConstraint(c)
}
