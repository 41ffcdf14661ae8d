// Package store persists the profile, draft and collection slots as JSON
// files under a data directory. Reads fall back to a caller-supplied default
// on any failure; writes are best-effort and never report errors. This
// matches the leniency policy of the rest of the app: a missing or corrupt
// slot must never surface as a user-visible error.
package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dannykalklus-wq/invoice-app/internal/invoice"
)

const (
	profileFile    = "profile.json"
	draftFile      = "draft.json"
	collectionFile = "collection.json"
)

type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily on the
// first write, so an unavailable medium degrades to fallback reads instead of
// failing construction.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// read decodes the named slot into out. The boolean reports whether the slot
// held a usable value; false means the caller's fallback applies.
func (s *Store) read(name string, out any) bool {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("reading slot", "slot", name, "error", err)
		}

		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		slog.Warn("decoding slot", "slot", name, "error", err)
		return false
	}

	return true
}

// write persists a slot via a temp file and rename so a failed write never
// truncates the previous value. Failures are logged and swallowed.
func (s *Store) write(name string, v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Warn("encoding slot", "slot", name, "error", err)
		return
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		slog.Warn("creating data directory", "dir", s.dir, "error", err)
		return
	}

	tmp := filepath.Join(s.dir, name+".tmp")
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		slog.Warn("writing slot", "slot", name, "error", err)
		return
	}

	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		slog.Warn("replacing slot", "slot", name, "error", err)
	}
}

func (s *Store) Profile(fallback invoice.CompanyProfile) invoice.CompanyProfile {
	var p invoice.CompanyProfile
	if !s.read(profileFile, &p) {
		return fallback
	}

	return p
}

func (s *Store) SaveProfile(p invoice.CompanyProfile) {
	s.write(profileFile, p)
}

func (s *Store) Draft(fallback *invoice.Invoice) *invoice.Invoice {
	var d invoice.Invoice
	if !s.read(draftFile, &d) {
		return fallback
	}

	return &d
}

func (s *Store) SaveDraft(d *invoice.Invoice) {
	s.write(draftFile, d)
}

func (s *Store) Collection() []invoice.Invoice {
	var list []invoice.Invoice
	if !s.read(collectionFile, &list) {
		return nil
	}

	return list
}

func (s *Store) SaveCollection(list []invoice.Invoice) {
	s.write(collectionFile, list)
}
