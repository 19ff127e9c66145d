package shell

import (
	"fmt"
	"strings"

	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"

	"readtab/ledger"
)

func (s *Shell) handleAdd() {
	name, ok := s.promptRequired("Reader name: ")
	if !ok {
		return
	}
	title, ok := s.promptRequired("Title: ")
	if !ok {
		return
	}
	author, ok := s.promptRequired("Author: ")
	if !ok {
		return
	}
	pages, ok := s.promptPages("Pages: ")
	if !ok {
		return
	}
	finished, ok := s.promptDate("Finished on (YYYY-MM-DD, blank for today): ")
	if !ok {
		return
	}

	s.led.AddEntry(ledger.BookEntry{
		Name:       name,
		Title:      title,
		Author:     author,
		Pages:      pages,
		FinishedOn: finished,
	})
	s.save()

	s.logger.Info("entry recorded", zap.String("title", title), zap.Int("pages", pages))
	fmt.Fprintf(s.out, "Recorded '%s' by %s (%d pages).\n", title, author, pages)
	s.pause()
}

func (s *Shell) handleList() {
	if len(s.led.Entries) == 0 {
		fmt.Fprintln(s.out, "No books recorded yet.")
		s.pause()
		return
	}

	fmt.Fprintf(s.out, "%-4s %-18s %-30s %-22s %8s  %s\n", "#", "Reader", "Title", "Author", "Pages", "Finished")
	fmt.Fprintln(s.out, strings.Repeat("-", 98))

	for i, e := range s.led.Entries {
		fmt.Fprintf(s.out, "%-4d %-18s %-30s %-22s %8d  %s\n",
			i+1,
			truncateString(e.Name, 18),
			truncateString(e.Title, 30),
			truncateString(e.Author, 22),
			e.Pages,
			e.FinishedOn.Format(ledger.DateLayout))
	}
	s.pause()
}

func (s *Shell) handleTotals() {
	fmt.Fprint(s.out, ledger.FormatTotals(s.led))
	s.pause()
}

func (s *Shell) handleExport() {
	path := s.cfg.ReportPath()
	if err := ledger.WriteReport(s.led, path); err != nil {
		s.logger.Error("export report", zap.Error(err))
		fmt.Fprintf(s.out, "Error exporting report: %v\n", err)
		s.pause()
		return
	}

	fmt.Fprintf(s.out, "Report written to %s\n", path)
	s.logger.Info("report exported", zap.String("path", path))

	// Viewer launch is best effort; a failure only reaches the debug log.
	if s.tty {
		if err := open.Start(path); err != nil {
			s.logger.Debug("open report viewer", zap.Error(err))
		}
	}
	s.pause()
}

func (s *Shell) handleMarkPaid() {
	fmt.Fprintf(s.out, "Unpaid pages: %d\n", s.led.UnpaidPages())
	fmt.Fprintf(s.out, "Amount owed:  $%d\n", s.led.AmountOwed())

	answer, ok := s.prompt("Mark everything as paid? (y/yes): ")
	if !ok {
		return
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(s.out, "Cancelled. Nothing was changed.")
		s.pause()
		return
	}

	settled := s.led.MarkPaid()
	s.save()
	s.logger.Info("pages settled", zap.Int("pages", settled))
	fmt.Fprintf(s.out, "Marked %d pages as paid.\n", settled)
	s.pause()
}

func (s *Shell) handleReset() {
	fmt.Fprintln(s.out, "This erases every recorded book and all billing state.")
	answer, ok := s.prompt("Type RESET to confirm: ")
	if !ok {
		return
	}
	if !strings.EqualFold(answer, "RESET") {
		fmt.Fprintln(s.out, "Cancelled. Nothing was changed.")
		s.pause()
		return
	}

	s.led.ResetAll()
	s.save()
	s.logger.Info("ledger reset")
	fmt.Fprintln(s.out, "Ledger cleared.")
	s.pause()
}
