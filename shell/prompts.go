package shell

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"readtab/ledger"
)

// readLine reads one line and trims surrounding whitespace. ok is false
// once input is exhausted.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

// promptRequired re-asks until the answer is non-blank.
func (s *Shell) promptRequired(label string) (string, bool) {
	for {
		answer, ok := s.prompt(label)
		if !ok {
			return "", false
		}
		if answer != "" {
			return answer, true
		}
		fmt.Fprintln(s.out, "This field cannot be empty.")
	}
}

// promptPages re-asks until the answer is a whole, non-negative number.
func (s *Shell) promptPages(label string) (int, bool) {
	for {
		answer, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		pages, err := strconv.Atoi(answer)
		if err != nil || pages < 0 {
			fmt.Fprintf(s.out, "Invalid page count: %s. Enter a whole number of pages.\n", answer)
			continue
		}
		return pages, true
	}
}

// promptDate re-asks until the answer parses as YYYY-MM-DD. A blank
// answer means today.
func (s *Shell) promptDate(label string) (time.Time, bool) {
	for {
		answer, ok := s.prompt(label)
		if !ok {
			return time.Time{}, false
		}
		if answer == "" {
			return today(), true
		}
		d, err := time.Parse(ledger.DateLayout, answer)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid date: %s. Please use the YYYY-MM-DD format.\n", answer)
			continue
		}
		return d, true
	}
}

// today returns the current date at UTC midnight, matching how typed
// dates come out of time.Parse.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
