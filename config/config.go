package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gookit/validate"
	"github.com/joho/godotenv"
)

const (
	defaultLedgerFile = "books.json"
	defaultReportFile = "report.txt"
	defaultLogFile    = "readtab.log"
	defaultLogLevel   = "info"
)

// Config tells the program where its files live and how chatty the log
// is. Everything comes from the environment with defaults, so a plain
// interactive run needs no setup at all.
type Config struct {
	DataDir    string `validate:"required"`
	LedgerFile string `validate:"required"`
	ReportFile string `validate:"required"`
	LogFile    string `validate:"required"`
	LogLevel   string `validate:"required|in:debug,info,warn,error"`
}

// Load builds the configuration from a .env file (if present) and
// READTAB_* environment variables. A non-empty dataDir wins over the
// environment; it exists for the --data-dir flag.
func Load(dataDir string) (*Config, error) {
	// Missing .env is fine; system environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:    getEnv("READTAB_DATA_DIR", defaultDataDir()),
		LedgerFile: getEnv("READTAB_LEDGER_FILE", defaultLedgerFile),
		ReportFile: getEnv("READTAB_REPORT_FILE", defaultReportFile),
		LogFile:    getEnv("READTAB_LOG_FILE", defaultLogFile),
		LogLevel:   getEnv("READTAB_LOG_LEVEL", defaultLogLevel),
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the rule tags on Config.
func (c *Config) Validate() error {
	v := validate.Struct(c)
	if !v.Validate() {
		return fmt.Errorf("invalid configuration: %w", v.Errors.OneError())
	}
	return nil
}

// LedgerPath returns the full path of the ledger file.
func (c *Config) LedgerPath() string { return filepath.Join(c.DataDir, c.LedgerFile) }

// ReportPath returns the full path of the exported report.
func (c *Config) ReportPath() string { return filepath.Join(c.DataDir, c.ReportFile) }

// LogPath returns the full path of the log file.
func (c *Config) LogPath() string { return filepath.Join(c.DataDir, c.LogFile) }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultDataDir keeps the data files next to the binary, falling back to
// the working directory when the executable path is unknown.
func defaultDataDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
