package ledger

import "time"

// PagesPerDollar is the billing rate: one dollar owed per full hundred
// unpaid pages. A partial hundred stays free until more pages accumulate.
const PagesPerDollar = 100

// New returns an empty ledger ready for use.
func New() *Ledger {
	return &Ledger{Entries: []BookEntry{}}
}

// AddEntry appends a finished book to the record. Input checking is the
// caller's job; the ledger accepts whatever it is handed.
func (l *Ledger) AddEntry(e BookEntry) {
	l.Entries = append(l.Entries, e)
}

// TotalPages sums the page counts of every recorded entry.
func (l *Ledger) TotalPages() int {
	total := 0
	for _, e := range l.Entries {
		total += e.Pages
	}
	return total
}

// UnpaidPages returns the pages read since the last settlement. A
// hand-edited file can claim more paid pages than were ever read; the
// result is clamped at zero rather than going negative.
func (l *Ledger) UnpaidPages() int {
	unpaid := l.TotalPages() - l.PaidThroughPages
	if unpaid < 0 {
		return 0
	}
	return unpaid
}

// AmountOwed converts unpaid pages into whole dollars at PagesPerDollar.
// Plain integer division: 99 unpaid pages owe nothing, 250 owe $2. No
// remainder is carried between calls.
func (l *Ledger) AmountOwed() int {
	return l.UnpaidPages() / PagesPerDollar
}

// MarkPaid settles everything read so far and stamps the payment time.
//
// Behavior:
//   - Sets the paid-through mark to the current page total, so the unpaid
//     count and amount owed both drop to zero.
//   - Records the settlement time in UTC.
//   - Returns the number of pages settled by this call.
//
// Calling MarkPaid again while nothing new is unpaid is a no-op: the
// ledger, including the recorded settlement time, stays untouched and the
// call returns 0. The caller is responsible for persisting the result.
func (l *Ledger) MarkPaid() int {
	if l.PaidThroughPages == l.TotalPages() && l.LastPaidAt != nil {
		return 0
	}
	settled := l.UnpaidPages()
	now := time.Now().UTC()
	l.PaidThroughPages = l.TotalPages()
	l.LastPaidAt = &now
	return settled
}

// ResetAll wipes every entry and all billing state.
func (l *Ledger) ResetAll() {
	l.Entries = []BookEntry{}
	l.PaidThroughPages = 0
	l.LastPaidAt = nil
}
