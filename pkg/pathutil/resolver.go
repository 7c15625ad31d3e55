// Package pathutil provides centralized path management for the bank data
// directory: the SQLite database and exported profile reports.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathResolver manages paths under the bank data root.
type PathResolver struct {
	dataRoot     string
	databasePath string
	reportsDir   string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// DataRoot is the root directory for all bank data (e.g., ~/bank-data)
	DataRoot string
	// DatabasePath is the path to the SQLite database file
	DatabasePath string
	// ReportsDir is the directory for exported profile reports
	ReportsDir string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {DataRoot}/.bank/bank.db
// If ReportsDir is empty, it defaults to {DataRoot}/reports
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.DataRoot, ".bank", "bank.db")
	}

	reportsDir := config.ReportsDir
	if reportsDir == "" {
		reportsDir = filepath.Join(config.DataRoot, "reports")
	}

	return &PathResolver{
		dataRoot:     config.DataRoot,
		databasePath: dbPath,
		reportsDir:   reportsDir,
	}
}

// FromEnv creates a PathResolver from environment variables.
// Expected environment variables:
//   - BANK_DATA_ROOT: Root directory for bank data (required)
//   - BANK_DB_PATH: Database file path (optional)
//   - BANK_REPORTS_DIR: Reports directory (optional)
func FromEnv() (*PathResolver, error) {
	dataRoot := os.Getenv("BANK_DATA_ROOT")
	if dataRoot == "" {
		return nil, fmt.Errorf("BANK_DATA_ROOT environment variable is required")
	}

	return New(Config{
		DataRoot:     dataRoot,
		DatabasePath: os.Getenv("BANK_DB_PATH"),
		ReportsDir:   os.Getenv("BANK_REPORTS_DIR"),
	}), nil
}

// GetDataRoot returns the bank data root directory.
func (p *PathResolver) GetDataRoot() string {
	return p.dataRoot
}

// GetDatabasePath returns the database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// GetReportsDir returns the reports directory.
func (p *PathResolver) GetReportsDir() string {
	return p.reportsDir
}

// GetReportFilePath returns the export path for a subbranch profile report.
// date should be in YYYY-MM-DD format; reports are grouped by year.
// Example: ~/bank-data/reports/2026/downtown_2026-09-01.txt
func (p *PathResolver) GetReportFilePath(subbranchName, date string) (string, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || len(parts[0]) != 4 {
		return "", fmt.Errorf("invalid date format: %s. Expected YYYY-MM-DD", date)
	}

	yearDir := filepath.Join(p.reportsDir, parts[0])
	filename := fmt.Sprintf("%s_%s.txt", sanitizeName(subbranchName), date)

	return filepath.Join(yearDir, filename), nil
}

// sanitizeName makes a subbranch name safe to use as a file name component.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer(" ", "-", string(filepath.Separator), "-")
	return replacer.Replace(name)
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return p.EnsureDir(dir)
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
