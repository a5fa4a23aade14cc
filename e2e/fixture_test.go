//go:build e2e

package e2e

import (
	"path/filepath"

	"github.com/kessho-pm/kessho/internal/memstore"
	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/repodata"
)

const repoURL = "https://repo.e2e.test"

// twoPackageDoc declares "a" depending on "b", each with a single
// version, matching the dependency shape used by spec.md's scenarios 2,
// 4, 5, and 6.
const twoPackageDoc = `
repositoryUrl: "https://repo.e2e.test"
packages: {
	a: {id: "a", versions: [{version: "1.0.0", dependencies: {b: ">=1.0.0"}}]}
	b: {id: "b", versions: [{version: "1.0.0"}]}
}
`

// singlePackageDoc declares just "a", for scenarios that don't need a
// dependency.
const singlePackageDoc = `
repositoryUrl: "https://repo.e2e.test"
packages: {
	a: {id: "a", versions: [{version: "1.0.0"}]}
}
`

// newFixtureStore builds a memstore.Store and matching Resolver from doc,
// backed by a receipt file under dir.
func newFixtureStore(dir, doc string) (*memstore.Store, *memstore.Resolver) {
	idx, err := repodata.Parse(doc)
	if err != nil {
		panic(err)
	}
	s := memstore.New(idx, filepath.Join(dir, "receipt.json"))
	return s, memstore.NewResolver(s)
}

// brokenReceiptStore builds a store whose receipt path lives under a
// directory that does not exist, so any Install/Uninstall call fails —
// the reference store's real way of returning an install error, rather
// than a hand-rolled fault-injection double.
func brokenReceiptStore(dir, doc string) (*memstore.Store, *memstore.Resolver) {
	idx, err := repodata.Parse(doc)
	if err != nil {
		panic(err)
	}
	s := memstore.New(idx, filepath.Join(dir, "does-not-exist", "receipt.json"))
	return s, memstore.NewResolver(s)
}

func key(id string) pkgkey.Key {
	return pkgkey.New(repoURL, id)
}
