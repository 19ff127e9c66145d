package main

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"readtab/config"
	"readtab/ledger"
	"readtab/shell"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles what every command needs once configuration is resolved.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *ledger.Store
	led    *ledger.Ledger
}

// newApp loads configuration, opens the log, and reads the ledger. An
// unreadable ledger file is logged and replaced in memory by an empty
// one; the file on disk stays as it is until the next save.
func newApp(dataDir string) (*app, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}

	// Ensure the data dir exists so the log and first save succeed.
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	logger := newLogger(cfg)
	store := ledger.NewStore(cfg.LedgerPath())

	led, err := store.Load()
	if err != nil {
		logger.Warn("ledger file unreadable, starting with an empty ledger", zap.Error(err))
	}

	return &app{cfg: cfg, logger: logger, store: store, led: led}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// newLogger builds the file logger. A build failure degrades to a
// no-op logger instead of blocking startup.
func newLogger(cfg *config.Config) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.LogPath()}
	zcfg.ErrorOutputPaths = []string{cfg.LogPath()}

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:   "readtab",
		Short: "Track finished books and what you owe for the pages you read",
		Long: `readtab keeps a personal reading ledger: every book you finish, the
pages it added, and the running amount owed at one dollar per hundred
pages. State lives in a single JSON file next to the binary (or wherever
READTAB_DATA_DIR points) and survives between runs.

Run without arguments for the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			a.logger.Info("starting interactive shell", zap.String("ledger", a.cfg.LedgerPath()))
			sh := shell.New(os.Stdin, os.Stdout, a.led, a.store, a.cfg, a.logger)
			return sh.Run()
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the ledger, report and log files")

	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newTotalsCmd(&dataDir))
	root.AddCommand(newImportCmd(&dataDir))
	root.AddCommand(newVersionCmd())
	return root
}

func newExportCmd(dataDir *string) *cobra.Command {
	var openViewer bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plain-text report without entering the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			path := a.cfg.ReportPath()
			if err := ledger.WriteReport(a.led, path); err != nil {
				a.logger.Error("export report", zap.Error(err))
				return err
			}
			a.logger.Info("report exported", zap.String("path", path))
			fmt.Printf("Report written to %s\n", path)

			if openViewer {
				// Best effort, same as the menu's export.
				if err := open.Start(path); err != nil {
					a.logger.Debug("open report viewer", zap.Error(err))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&openViewer, "open", false, "open the report with the system viewer")
	return cmd
}

func newTotalsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Print the running totals and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Print(ledger.FormatTotals(a.led))
			return nil
		},
	}
}

func newImportCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-append entries from a JSON file",
		Long: `Import reads a JSON array of entries and appends each valid one to the
ledger. Elements use the same shape as entries in the ledger file:

  [{"name": "Ada", "title": "Dune", "author": "Frank Herbert",
    "pages": 412, "finished_on": "2026-08-01T00:00:00Z"}]

Invalid elements are skipped with a message; the ledger is saved once at
the end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*dataDir)
			if err != nil {
				return err
			}
			defer a.close()
			return runImport(a, args[0])
		},
	}
}

// runImport appends every valid entry from path and saves once at the end.
func runImport(a *app, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	var entries []ledger.BookEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse import file: %w", err)
	}

	imported := 0
	skipped := 0
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			fmt.Printf("Skipping entry %d: %v\n", i+1, err)
			skipped++
			continue
		}
		// Stored dates are calendar days at UTC midnight.
		y, m, d := e.FinishedOn.UTC().Date()
		e.FinishedOn = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

		a.led.AddEntry(e)
		imported++
	}

	if imported > 0 {
		if err := a.store.Save(a.led); err != nil {
			return fmt.Errorf("save ledger: %w", err)
		}
	}

	a.logger.Info("bulk import finished", zap.Int("imported", imported), zap.Int("skipped", skipped))
	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Imported: %d entries\n", imported)
	fmt.Printf("Skipped:  %d\n", skipped)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the readtab version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("readtab " + version)
		},
	}
}
