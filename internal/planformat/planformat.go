// Package planformat serializes a built transaction plan to and from
// YAML. `kessho plan --format=yaml` uses it for output; no subcommand
// reads a plan back.
package planformat

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/target"
	"github.com/kessho-pm/kessho/internal/transaction"
)

// Plan is the on-disk representation of a built transaction.
type Plan struct {
	Entries []Entry `yaml:"actions"`
}

// Entry is one plan entry. Package and Target round-trip through their
// own String()/Parse() pairs; Action has its own YAML codec (see
// internal/transaction) producing the lowercase "install"/"uninstall"
// spellings used throughout kessho's CLI output.
type Entry struct {
	Package string                        `yaml:"package"`
	Action  transaction.PackageActionType `yaml:"action"`
	Target  string                        `yaml:"target"`
}

// FromActions converts a built transaction's actions into their
// serializable form.
func FromActions(actions []transaction.PackageAction) Plan {
	out := Plan{Entries: make([]Entry, len(actions))}
	for i, a := range actions {
		out.Entries[i] = Entry{Package: a.ID.String(), Action: a.Action, Target: a.Target.String()}
	}
	return out
}

// Actions converts a Plan back into transaction.PackageAction values.
func (p Plan) Actions() ([]transaction.PackageAction, error) {
	out := make([]transaction.PackageAction, len(p.Entries))
	for i, e := range p.Entries {
		key, err := pkgkey.Parse(e.Package)
		if err != nil {
			return nil, fmt.Errorf("planformat: entry %d: %w", i, err)
		}
		t, err := target.Parse(e.Target)
		if err != nil {
			return nil, fmt.Errorf("planformat: entry %d: %w", i, err)
		}
		out[i] = transaction.PackageAction{ID: key, Action: e.Action, Target: t}
	}
	return out, nil
}

// Marshal renders a Plan as YAML.
func Marshal(p Plan) ([]byte, error) {
	return yaml.Marshal(p)
}

// Unmarshal parses a Plan from YAML.
func Unmarshal(data []byte) (Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("planformat: %w", err)
	}
	return p, nil
}
