package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "books.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := tempStore(t)

	l, err := s.Load()
	require.NoError(t, err, "a missing file is a normal first run")
	require.NotNil(t, l)
	assert.Empty(t, l.Entries)
	assert.Equal(t, 0, l.PaidThroughPages)
	assert.Nil(t, l.LastPaidAt)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	l := New()
	l.AddEntry(BookEntry{
		Name:       "Ada",
		Title:      "Dune",
		Author:     "Frank Herbert",
		Pages:      412,
		FinishedOn: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	l.MarkPaid()
	l.AddEntry(BookEntry{
		Name:       "Ada",
		Title:      "The Dispossessed",
		Author:     "Ursula K. Le Guin",
		Pages:      88,
		FinishedOn: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, s.Save(l))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, l, loaded)
	assert.Equal(t, 88, loaded.UnpaidPages())
}

func TestLoadCorruptFile(t *testing.T) {
	s := tempStore(t)
	corrupt := []byte("{ definitely not json")
	require.NoError(t, os.WriteFile(s.Path(), corrupt, 0o644))

	l, err := s.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse ledger file")

	// The caller still gets a usable empty ledger.
	require.NotNil(t, l)
	assert.Empty(t, l.Entries)

	// The broken file is left alone until the next successful save.
	data, readErr := os.ReadFile(s.Path())
	require.NoError(t, readErr)
	assert.Equal(t, corrupt, data)
}

func TestLoadCaseInsensitiveKeys(t *testing.T) {
	s := tempStore(t)
	raw := `{
  "ENTRIES": [
    {"NAME": "Ada", "Title": "Dune", "AUTHOR": "Frank Herbert", "Pages": 412, "Finished_On": "2026-08-01T00:00:00Z"}
  ],
  "Paid_Through_Pages": 100
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	l, err := s.Load()
	require.NoError(t, err)
	require.Len(t, l.Entries, 1)
	assert.Equal(t, "Ada", l.Entries[0].Name)
	assert.Equal(t, "Dune", l.Entries[0].Title)
	assert.Equal(t, "Frank Herbert", l.Entries[0].Author)
	assert.Equal(t, 412, l.Entries[0].Pages)
	assert.Equal(t, 100, l.PaidThroughPages)
	assert.Equal(t, 312, l.UnpaidPages())
}

func TestLoadNullEntries(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"entries": null, "paid_through_pages": 0}`), 0o644))

	l, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, l.Entries)
	assert.Empty(t, l.Entries)
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "nested", "data", "books.json"))

	require.NoError(t, s.Save(New()))

	_, err := os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestSaveReplacesFileCleanly(t *testing.T) {
	s := tempStore(t)

	l := New()
	l.AddEntry(BookEntry{Name: "Ada", Title: "Dune", Author: "Frank Herbert", Pages: 412,
		FinishedOn: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, s.Save(l))

	l.AddEntry(BookEntry{Name: "Ada", Title: "Emma", Author: "Jane Austen", Pages: 474,
		FinishedOn: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, s.Save(l))

	// No temp file left behind after the rename.
	_, err := os.Stat(s.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 2)
	assert.Equal(t, 886, loaded.TotalPages())
}

func TestSaveWritesReadableJSON(t *testing.T) {
	s := tempStore(t)

	l := New()
	l.AddEntry(BookEntry{Name: "Ada", Title: "Dune", Author: "Frank Herbert", Pages: 412,
		FinishedOn: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, s.Save(l))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	// Indented keys make the file inspectable and hand-editable.
	assert.Contains(t, string(data), "\"entries\"")
	assert.Contains(t, string(data), "  \"paid_through_pages\": 0")
	assert.Contains(t, string(data), "\"title\": \"Dune\"")
	assert.NotContains(t, string(data), "last_paid_at", "unused optional fields stay out of the file")
}
