package repodata

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/Masterminds/semver/v3"
)

// Load reads and validates a repository document from path, unifying it
// against schema before decoding, so that a malformed document is
// rejected with a CUE constraint error rather than an opaque decode
// failure.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("repodata: reading %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse validates and decodes a repository document given as CUE source.
func Parse(source string) (*Index, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("repodata: internal schema error: %w", err)
	}

	docValue := ctx.CompileString(source)
	if err := docValue.Err(); err != nil {
		return nil, fmt.Errorf("repodata: parsing document: %w", err)
	}

	unified := schemaValue.Unify(docValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("repodata: document does not satisfy schema: %w", err)
	}

	var idx Index
	if err := unified.Decode(&idx); err != nil {
		return nil, fmt.Errorf("repodata: decoding document: %w", err)
	}

	for id, pkg := range idx.Packages {
		pkg.ID = id
		for _, v := range pkg.Versions {
			if _, err := semver.NewVersion(v.Version); err != nil {
				return nil, fmt.Errorf("repodata: package %q version %q: %w", id, v.Version, err)
			}
		}
	}

	return &idx, nil
}
