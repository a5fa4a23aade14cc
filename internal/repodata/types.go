// Package repodata loads a declarative package/version/dependency index
// from a CUE document: the reference repository format that
// internal/memstore and internal/depresolve's reference resolver read
// from, in place of a real network-backed package registry.
package repodata

// Index is a parsed repository: every package known to it, keyed by
// package ID within that repository.
type Index struct {
	RepositoryURL string               `json:"repositoryUrl"`
	Packages      map[string]*Package  `json:"packages"`
}

// Package is one package's full set of published releases.
type Package struct {
	// ID is the package identifier, matching its key in Index.Packages.
	ID string `json:"id"`
	// Versions is every published release, not necessarily sorted.
	Versions []Version `json:"versions"`
}

// Version is a single published release and its declared dependencies.
type Version struct {
	// Version is a semver string, e.g. "1.4.0".
	Version string `json:"version"`
	// Dependencies maps a dependency package ID to a semver constraint
	// string (as accepted by github.com/Masterminds/semver/v3), e.g.
	// {"libfoo": ">=2.0.0, <3.0.0"}.
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Latest returns the highest version of pkg. It is the caller's
// responsibility to have already validated that every Version.Version
// string parses as semver; Latest panics otherwise, since a repository
// that fails to validate should never reach this call.
func (p *Package) Latest() Version {
	best := p.Versions[0]
	bestSV := mustParseSemver(best.Version)
	for _, v := range p.Versions[1:] {
		sv := mustParseSemver(v.Version)
		if sv.GreaterThan(bestSV) {
			best, bestSV = v, sv
		}
	}
	return best
}
