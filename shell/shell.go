package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"readtab/config"
	"readtab/ledger"
)

// Shell runs the interactive menu. All input and output goes through the
// injected reader and writer so the whole loop can be driven from tests.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	led    *ledger.Ledger
	store  *ledger.Store
	cfg    *config.Config
	logger *zap.Logger
	tty    bool
}

// New wires a shell around an already-loaded ledger. The screen is only
// cleared and the report viewer only launched when in is a real terminal.
func New(in io.Reader, out io.Writer, led *ledger.Ledger, store *ledger.Store, cfg *config.Config, logger *zap.Logger) *Shell {
	s := &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		led:    led,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
	if f, ok := in.(*os.File); ok {
		s.tty = term.IsTerminal(int(f.Fd()))
	}
	return s
}

// Run shows the menu until the user picks save & exit or input ends.
// Every mutating action saves immediately, so an abrupt end loses
// nothing that was ever confirmed.
func (s *Shell) Run() error {
	for {
		s.clearScreen()
		s.printMenu()

		choice, ok := s.readLine()
		if !ok {
			s.logger.Info("input closed, leaving menu")
			return nil
		}

		switch choice {
		case "1":
			s.handleAdd()
		case "2":
			s.handleList()
		case "3":
			s.handleTotals()
		case "4":
			s.handleExport()
		case "5":
			s.handleMarkPaid()
		case "6":
			s.handleReset()
		case "7":
			if s.save() {
				fmt.Fprintln(s.out, "Saved. Goodbye!")
			} else {
				fmt.Fprintln(s.out, "Goodbye!")
			}
			s.logger.Info("shutting down")
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown choice: %q. Enter a number from 1 to 7.\n", choice)
			s.pause()
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, "========================================")
	fmt.Fprintln(s.out, "    readtab - personal reading ledger")
	fmt.Fprintln(s.out, "========================================")
	fmt.Fprintln(s.out, " 1. Add a finished book")
	fmt.Fprintln(s.out, " 2. List recorded books")
	fmt.Fprintln(s.out, " 3. Show totals")
	fmt.Fprintln(s.out, " 4. Export report")
	fmt.Fprintln(s.out, " 5. Mark pages as paid")
	fmt.Fprintln(s.out, " 6. Reset the ledger")
	fmt.Fprintln(s.out, " 7. Save & exit")
	fmt.Fprint(s.out, "\n> ")
}

// save persists the ledger and reports failures without stopping the
// menu. It returns false when the write did not land.
func (s *Shell) save() bool {
	if err := s.store.Save(s.led); err != nil {
		s.logger.Error("save ledger", zap.Error(err))
		fmt.Fprintf(s.out, "Warning: could not save the ledger: %v\n", err)
		return false
	}
	return true
}

func (s *Shell) clearScreen() {
	if s.tty {
		fmt.Fprint(s.out, "\033[2J\033[H") // Clear screen and move cursor to top
	}
}

func (s *Shell) pause() {
	fmt.Fprint(s.out, "\nPress Enter to continue...")
	s.in.Scan()
}
