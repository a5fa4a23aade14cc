package memstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/target"
)

// receipt is the on-disk record of what memstore believes is installed.
// It is read and written only while receiptLock is held.
type receipt struct {
	// Installed maps "<target>:<package key>" to the installed version.
	Installed map[string]string `json:"installed"`
}

func receiptEntryKey(key pkgkey.Key, t target.Target) string {
	return fmt.Sprintf("%s:%s", t, key)
}

func newReceipt() *receipt {
	return &receipt{Installed: make(map[string]string)}
}

// receiptFile guards a single JSON receipt file with an adjacent lock
// file, the same split the reference state store uses: a *.lock path
// taken with flock.TryLock, and the JSON payload written only while held.
type receiptFile struct {
	path string
	lock *flock.Flock
}

func newReceiptFile(path string) *receiptFile {
	return &receiptFile{path: path, lock: flock.New(path + ".lock")}
}

// withLock acquires the receipt's file lock, passes the current receipt
// (empty if the file doesn't exist yet) to fn, persists whatever fn
// returns, and releases the lock.
func (r *receiptFile) withLock(fn func(*receipt) (*receipt, error)) error {
	locked, err := r.lock.TryLock()
	if err != nil {
		return fmt.Errorf("memstore: acquiring receipt lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("memstore: receipt %s is locked by another process", r.path)
	}
	defer r.lock.Unlock()

	current, err := r.read()
	if err != nil {
		return err
	}

	updated, err := fn(current)
	if err != nil {
		return err
	}
	if updated == nil {
		return nil
	}
	return r.write(updated)
}

func (r *receiptFile) read() (*receipt, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return newReceipt(), nil
		}
		return nil, fmt.Errorf("memstore: reading receipt: %w", err)
	}
	var rec receipt
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("memstore: parsing receipt: %w", err)
	}
	if rec.Installed == nil {
		rec.Installed = make(map[string]string)
	}
	return &rec, nil
}

// readUnlocked reads the receipt without taking the lock, for callers
// (like Status) that only need a point-in-time read and can tolerate a
// racing writer.
func (r *receiptFile) readUnlocked() (*receipt, error) {
	return r.read()
}

func (r *receiptFile) write(rec *receipt) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("memstore: marshaling receipt: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("memstore: writing receipt: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("memstore: renaming receipt: %w", err)
	}
	return nil
}
