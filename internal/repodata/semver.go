package repodata

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

func mustParseSemver(v string) *semver.Version {
	sv, err := semver.NewVersion(v)
	if err != nil {
		panic(fmt.Sprintf("repodata: invalid semver %q baked into a validated index: %v", v, err))
	}
	return sv
}

// SatisfyingVersion returns the highest version of pkg satisfying
// constraint, and false if none does.
func (p *Package) SatisfyingVersion(constraint string) (Version, bool) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return Version{}, false
	}

	var best Version
	var bestSV *semver.Version
	for _, v := range p.Versions {
		sv, err := semver.NewVersion(v.Version)
		if err != nil {
			continue
		}
		if !c.Check(sv) {
			continue
		}
		if bestSV == nil || sv.GreaterThan(bestSV) {
			best, bestSV = v, sv
		}
	}
	return best, bestSV != nil
}
