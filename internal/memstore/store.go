// Package memstore is a reference store.PackageStore backed by a
// repodata.Index held in memory and a flock-protected JSON receipt file
// that tracks what has been "installed" by this process — a stand-in for
// the real filesystem/package-database operations a production store
// would perform.
package memstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/repodata"
	"github.com/kessho-pm/kessho/internal/status"
	"github.com/kessho-pm/kessho/internal/store"
	"github.com/kessho-pm/kessho/internal/target"
)

// Store is a store.PackageStore over a single repodata.Index.
type Store struct {
	repositoryURL string
	index         *repodata.Index
	receipt       *receiptFile
}

// New creates a Store. receiptPath is where the install receipt is
// persisted; it and a sibling ".lock" file are created on first write.
func New(index *repodata.Index, receiptPath string) *Store {
	return &Store{
		repositoryURL: index.RepositoryURL,
		index:         index,
		receipt:       newReceiptFile(receiptPath),
	}
}

// FindPackageByKey implements store.PackageStore.
func (s *Store) FindPackageByKey(key pkgkey.Key) (*store.Package, bool) {
	if key.RepositoryURL() != s.repositoryURL {
		return nil, false
	}
	pkg, ok := s.index.Packages[key.ID()]
	if !ok || len(pkg.Versions) == 0 {
		return nil, false
	}
	return &store.Package{ID: pkg.ID, Version: pkg.Latest().Version}, true
}

// Status implements store.PackageStore.
func (s *Store) Status(_ context.Context, key pkgkey.Key, t target.Target) (status.Status, error) {
	pkg, ok := s.FindPackageByKey(key)
	if !ok {
		return 0, status.NewPayloadStatusError(status.NewPayloadError(status.NoPackage))
	}

	rec, err := s.receipt.readUnlocked()
	if err != nil {
		return 0, err
	}

	installedVersion, installed := rec.Installed[receiptEntryKey(key, t)]
	if !installed {
		return status.NotInstalled, nil
	}

	latest, err := compareVersions(installedVersion, pkg.Version)
	if err != nil {
		return 0, status.ErrParsingVersion
	}
	if latest {
		return status.UpToDate, nil
	}
	return status.RequiresUpdate, nil
}

// Install implements store.PackageStore.
func (s *Store) Install(_ context.Context, key pkgkey.Key, t target.Target) error {
	pkg, ok := s.FindPackageByKey(key)
	if !ok {
		return fmt.Errorf("memstore: install: package %s not found", key)
	}

	slog.Debug("memstore: installing", "package", key.String(), "version", pkg.Version, "target", t)

	return s.receipt.withLock(func(rec *receipt) (*receipt, error) {
		rec.Installed[receiptEntryKey(key, t)] = pkg.Version
		return rec, nil
	})
}

// Uninstall implements store.PackageStore.
func (s *Store) Uninstall(_ context.Context, key pkgkey.Key, t target.Target) error {
	slog.Debug("memstore: uninstalling", "package", key.String(), "target", t)

	return s.receipt.withLock(func(rec *receipt) (*receipt, error) {
		delete(rec.Installed, receiptEntryKey(key, t))
		return rec, nil
	})
}

// compareVersions reports whether installed >= latest.
func compareVersions(installed, latest string) (bool, error) {
	iv, err := parseSemver(installed)
	if err != nil {
		return false, err
	}
	lv, err := parseSemver(latest)
	if err != nil {
		return false, err
	}
	return !iv.LessThan(lv), nil
}
