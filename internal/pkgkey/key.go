// Package pkgkey defines PackageKey, the opaque, stringifiable identity of
// a package within a repository.
package pkgkey

import (
	"fmt"
	"strings"
)

// Key is the stable identity of a package. It is created by the caller or
// returned by a store and is never mutated after construction. Two keys
// are equal iff their repository URL and package ID are equal, which makes
// Key safe to use as a map key and for equality comparisons.
type Key struct {
	repositoryURL string
	id            string
}

// New creates a Key from a repository URL and a package ID.
func New(repositoryURL, id string) Key {
	return Key{repositoryURL: repositoryURL, id: id}
}

// Parse parses a key previously produced by String, in the form
// "<repositoryURL>/packages/<id>".
func Parse(s string) (Key, error) {
	const sep = "/packages/"
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return Key{}, fmt.Errorf("pkgkey: invalid key %q: missing %q separator", s, sep)
	}
	repo := s[:idx]
	id := s[idx+len(sep):]
	if repo == "" || id == "" {
		return Key{}, fmt.Errorf("pkgkey: invalid key %q: empty repository or id", s)
	}
	return Key{repositoryURL: repo, id: id}, nil
}

// RepositoryURL returns the repository this key belongs to.
func (k Key) RepositoryURL() string {
	return k.repositoryURL
}

// ID returns the package identifier within its repository.
func (k Key) ID() string {
	return k.id
}

// String renders the key as "<repositoryURL>/packages/<id>".
func (k Key) String() string {
	return k.repositoryURL + "/packages/" + k.id
}

// IsZero reports whether k is the zero value.
func (k Key) IsZero() bool {
	return k.repositoryURL == "" && k.id == ""
}
