package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// Store reads and writes the ledger file. The file is plain indented JSON
// so it stays inspectable and hand-editable; every save rewrites it whole.
type Store struct {
	path string
}

// NewStore points a store at the ledger file. Nothing is touched on disk
// until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the ledger file location.
func (s *Store) Path() string { return s.path }

// Load reads the ledger from disk. A missing file is a normal first run
// and yields an empty ledger with no error. An unreadable or unparsable
// file also yields a usable empty ledger, but the error is returned so
// the caller can log it; the bytes on disk are left alone until the next
// successful Save.
func (s *Store) Load() (*Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return New(), fmt.Errorf("read ledger file: %w", err)
	}

	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return New(), fmt.Errorf("parse ledger file %s: %w", s.path, err)
	}
	if l.Entries == nil {
		l.Entries = []BookEntry{}
	}
	return &l, nil
}

// Save serializes the whole ledger and replaces the file. The write goes
// through a temp file, fsync and rename so a crash mid-write cannot leave
// a half-written ledger behind.
func (s *Store) Save(l *Ledger) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize ledger: %w", err)
	}

	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("write ledger: %w", err)
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("sync ledger: %w", err)
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("close ledger: %w", err)
	}

	if err = os.Rename(tmpFile, s.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}
