package memstore

import (
	"context"

	"github.com/kessho-pm/kessho/internal/depresolve"
	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/target"
)

// Resolver is the reference depresolve.Resolver: it resolves a package's
// direct dependencies by matching each declared semver constraint
// against the versions published in the same repodata.Index the Store
// reads from.
type Resolver struct {
	repositoryURL string
	index         map[string]*indexEntry
}

type indexEntry struct {
	versions map[string]map[string]string // version -> (dependency id -> constraint)
}

// NewResolver builds a Resolver over s's index.
func NewResolver(s *Store) *Resolver {
	entries := make(map[string]*indexEntry, len(s.index.Packages))
	for id, pkg := range s.index.Packages {
		e := &indexEntry{versions: make(map[string]map[string]string, len(pkg.Versions))}
		for _, v := range pkg.Versions {
			e.versions[v.Version] = v.Dependencies
		}
		entries[id] = e
	}
	return &Resolver{repositoryURL: s.repositoryURL, index: entries}
}

// Resolve implements depresolve.Resolver. It resolves key's latest
// version's declared dependency constraints against this repository,
// checking that at least one version of each dependency satisfies its
// constraint. The returned keys carry no version.
func (r *Resolver) Resolve(_ context.Context, key pkgkey.Key, _ target.Target) ([]pkgkey.Key, error) {
	entry, ok := r.index[key.ID()]
	if !ok {
		return nil, &depresolve.PackageDependencyError{Key: key, Kind: depresolve.PackageNotFound, Dependency: key}
	}

	latestVersion := highestVersion(entry.versions)
	deps := entry.versions[latestVersion]

	out := make([]pkgkey.Key, 0, len(deps))
	for depID, constraint := range deps {
		depEntry, ok := r.index[depID]
		depKey := pkgkey.New(r.repositoryURL, depID)
		if !ok {
			return nil, &depresolve.PackageDependencyError{Key: key, Kind: depresolve.PackageNotFound, Dependency: depKey}
		}
		if !satisfiable(depEntry.versions, constraint) {
			return nil, &depresolve.PackageDependencyError{Key: key, Kind: depresolve.VersionNotFound, Dependency: depKey, Constraint: constraint}
		}
		out = append(out, depKey)
	}
	return out, nil
}

func highestVersion(versions map[string]string) string {
	var best string
	for v := range versions {
		if best == "" || versionLess(best, v) {
			best = v
		}
	}
	return best
}

func versionLess(a, b string) bool {
	av, errA := parseSemver(a)
	bv, errB := parseSemver(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return av.LessThan(bv)
}

func satisfiable(versions map[string]string, constraint string) bool {
	for v := range versions {
		sv, err := parseSemver(v)
		if err != nil {
			continue
		}
		c, err := parseConstraint(constraint)
		if err != nil {
			continue
		}
		if c.Check(sv) {
			return true
		}
	}
	return false
}
