package transaction_test

import (
	"context"
	"sync"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/status"
	"github.com/kessho-pm/kessho/internal/store"
	"github.com/kessho-pm/kessho/internal/target"
)

// fakeStore is an in-memory store.PackageStore for planner/executor tests.
type fakeStore struct {
	mu        sync.Mutex
	packages  map[pkgkey.Key]*store.Package
	statuses  map[pkgkey.Key]status.Status
	installed map[pkgkey.Key]bool

	installErr   map[pkgkey.Key]error
	uninstallErr map[pkgkey.Key]error

	// beforeInstall, if set, runs synchronously before Install mutates
	// state — tests use it to synchronize with a concurrent cancel.
	beforeInstall func(pkgkey.Key)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		packages:     make(map[pkgkey.Key]*store.Package),
		statuses:     make(map[pkgkey.Key]status.Status),
		installed:    make(map[pkgkey.Key]bool),
		installErr:   make(map[pkgkey.Key]error),
		uninstallErr: make(map[pkgkey.Key]error),
	}
}

func (s *fakeStore) add(key pkgkey.Key, st status.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages[key] = &store.Package{ID: key.ID(), Version: "1.0.0"}
	s.statuses[key] = st
}

func (s *fakeStore) FindPackageByKey(key pkgkey.Key) (*store.Package, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.packages[key]
	return p, ok
}

func (s *fakeStore) Status(_ context.Context, key pkgkey.Key, _ target.Target) (status.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statuses[key], nil
}

func (s *fakeStore) Install(_ context.Context, key pkgkey.Key, _ target.Target) error {
	if s.beforeInstall != nil {
		s.beforeInstall(key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.installErr[key]; err != nil {
		return err
	}
	s.statuses[key] = status.UpToDate
	s.installed[key] = true
	return nil
}

func (s *fakeStore) Uninstall(_ context.Context, key pkgkey.Key, _ target.Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.uninstallErr[key]; err != nil {
		return err
	}
	s.statuses[key] = status.NotInstalled
	return nil
}

// fakeResolver resolves dependencies from a fixed adjacency map.
type fakeResolver map[pkgkey.Key][]pkgkey.Key

func (r fakeResolver) Resolve(_ context.Context, key pkgkey.Key, _ target.Target) ([]pkgkey.Key, error) {
	return r[key], nil
}
