package transaction_test

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/status"
	"github.com/kessho-pm/kessho/internal/target"
	"github.com/kessho-pm/kessho/internal/transaction"
)

// genTransaction builds a random acyclic dependency forest over a small
// key space, a random status per key, and a random sequence of requested
// actions drawn from that space, then runs it through transaction.New.
// It returns the resulting plan (nil on a rejected transaction, which is
// itself a valid outcome the properties below must tolerate).
func genTransaction(t *rapid.T) ([]transaction.PackageAction, error) {
	n := rapid.IntRange(2, 6).Draw(t, "n")
	keys := make([]pkgkey.Key, n)
	for i := range keys {
		keys[i] = key(rapid.StringMatching(`[a-z]{3,6}`).Draw(t, "id"))
	}

	// Each key may depend only on keys earlier in the slice, guaranteeing
	// acyclicity without needing cycle-breaking logic in the generator.
	deps := make(fakeResolver)
	s := newFakeStore()
	for i, k := range keys {
		s.add(k, status.Status(rapid.IntRange(0, 2).Draw(t, "status")))
		if i == 0 {
			continue
		}
		depCount := rapid.IntRange(0, i).Draw(t, "depCount")
		chosen := rapid.Permutation(keys[:i]).Draw(t, "perm")[:depCount]
		deps[k] = chosen
	}

	actionCount := rapid.IntRange(1, n).Draw(t, "actionCount")
	requestedKeys := rapid.Permutation(keys).Draw(t, "requestedPerm")[:actionCount]

	actions := make([]transaction.PackageAction, actionCount)
	for i, k := range requestedKeys {
		if rapid.Bool().Draw(t, "isInstall") {
			actions[i] = transaction.Install(k, target.System)
		} else {
			actions[i] = transaction.Uninstall(k, target.System)
		}
	}

	tx, err := transaction.New(context.Background(), s, deps, actions)
	if err != nil {
		return nil, err
	}
	return tx.Actions(), nil
}

// TestRapidContradictionFree checks P2: a successfully built plan never
// contains the same key in both its install and uninstall sets.
func TestRapidContradictionFree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		plan, err := genTransaction(t)
		if err != nil {
			return
		}

		installs := make(map[pkgkey.Key]bool)
		uninstalls := make(map[pkgkey.Key]bool)
		for _, a := range plan {
			if a.IsInstall() {
				installs[a.ID] = true
			} else {
				uninstalls[a.ID] = true
			}
		}
		for k := range installs {
			if uninstalls[k] {
				t.Fatalf("key %s present in both install and uninstall sets", k)
			}
		}
	})
}

// TestRapidOrderPreservation checks P4: the surviving caller-supplied
// actions appear in the plan in the same relative order they were
// requested in.
func TestRapidOrderPreservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 5).Draw(t, "n")
		keys := make([]pkgkey.Key, n)
		for i := range keys {
			keys[i] = key(rapid.StringMatching(`[a-z]{3,6}`).Draw(t, "id"))
		}

		s := newFakeStore()
		for _, k := range keys {
			s.add(k, status.NotInstalled)
		}

		requested := make([]transaction.PackageAction, n)
		for i, k := range keys {
			requested[i] = transaction.Install(k, target.System)
		}

		tx, err := transaction.New(context.Background(), s, fakeResolver{}, requested)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var lastSeen = -1
		for _, k := range keys {
			idx := indexOfAction(tx.Actions(), k)
			if idx < 0 {
				continue
			}
			if idx < lastSeen {
				t.Fatalf("requested order not preserved for key %s", k)
			}
			lastSeen = idx
		}
	})
}

func indexOfAction(actions []transaction.PackageAction, k pkgkey.Key) int {
	for i, a := range actions {
		if a.ID == k {
			return i
		}
	}
	return -1
}
