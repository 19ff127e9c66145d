package ledger

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used wherever a date is typed or shown.
const DateLayout = "2006-01-02"

// BookEntry represents one finished book. Entries are append-only: once
// recorded they are never edited or individually removed.
type BookEntry struct {
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Pages      int       `json:"pages"`
	FinishedOn time.Time `json:"finished_on"`
}

// Validate reports whether the entry is complete enough to record. The
// interactive prompts enforce the same rules one answer at a time; bulk
// import runs them here in one shot.
func (e BookEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("reader name cannot be empty")
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if strings.TrimSpace(e.Author) == "" {
		return fmt.Errorf("author cannot be empty")
	}
	if e.Pages < 0 {
		return fmt.Errorf("page count must be zero or more, got %d", e.Pages)
	}
	if e.FinishedOn.IsZero() {
		return fmt.Errorf("finished_on date is missing")
	}
	return nil
}

// Ledger represents the complete reading record for persistence: every
// finished book plus the billing bookkeeping.
type Ledger struct {
	Entries          []BookEntry `json:"entries"`
	PaidThroughPages int         `json:"paid_through_pages"`
	LastPaidAt       *time.Time  `json:"last_paid_at,omitempty"`
}
