package ledger

import (
	"fmt"
	"os"
	"strings"
)

// FormatTotals renders the running totals block shown by the totals view
// and at the bottom of the exported report.
func FormatTotals(l *Ledger) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Books recorded:   %d\n", len(l.Entries))
	fmt.Fprintf(&sb, "Total pages read: %d\n", l.TotalPages())
	fmt.Fprintf(&sb, "Pages paid for:   %d\n", l.PaidThroughPages)
	fmt.Fprintf(&sb, "Unpaid pages:     %d\n", l.UnpaidPages())
	fmt.Fprintf(&sb, "Amount owed:      $%d\n", l.AmountOwed())
	if l.LastPaidAt != nil {
		fmt.Fprintf(&sb, "Last paid:        %s\n", l.LastPaidAt.Format("2006-01-02 15:04"))
	}
	return sb.String()
}

// BuildReport assembles the plain-text report: a header, two lines per
// entry, and the totals block.
func BuildReport(l *Ledger) string {
	var sb strings.Builder
	sb.WriteString("Reading Record\n")
	sb.WriteString(strings.Repeat("=", 70) + "\n\n")

	if len(l.Entries) == 0 {
		sb.WriteString("No books recorded yet.\n")
	} else {
		for i, e := range l.Entries {
			fmt.Fprintf(&sb, "%d. %s read %q by %s\n", i+1, e.Name, e.Title, e.Author)
			fmt.Fprintf(&sb, "   %d pages, finished %s\n", e.Pages, e.FinishedOn.Format(DateLayout))
		}
	}

	sb.WriteString("\n" + strings.Repeat("-", 70) + "\n")
	sb.WriteString(FormatTotals(l))
	return sb.String()
}

// WriteReport writes the report to path, replacing any previous export.
func WriteReport(l *Ledger, path string) error {
	if err := os.WriteFile(path, []byte(BuildReport(l)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
