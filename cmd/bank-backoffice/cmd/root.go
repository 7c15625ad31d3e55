// Package cmd provides CLI commands for bank-backoffice.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/bank"
	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/config"
	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/db"
	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/pathutil"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bank-backoffice",
	Short: "Manage bank clients, accounts and subbranch ledgers",
	Long: `bank-backoffice is a CLI for the bank back-office database.

It supports:
- Opening, updating and deleting accounts with their owners
- Keeping subbranch asset totals consistent across multi-table changes
- Client and subbranch setup
- Year/quarter/month profile statistics with optional file export

Example:
  bank-backoffice account open --type savingAccount --balance 1000.00 \
      --subbranch downtown --clients "c1 c2" --currency USD --interest 0.03
  bank-backoffice profile --subbranch downtown`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logging
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(subbranchCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(profileCmd)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// loadEnvironment loads the configuration and opens the database.
// The caller owns the returned connection.
func loadEnvironment() (*config.Config, *db.Connection, *pathutil.PathResolver, error) {
	cfg, err := config.Load(getConfigFile())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	pathResolver := pathutil.New(pathutil.Config{
		DataRoot:     cfg.Bank.DataRoot,
		DatabasePath: cfg.Bank.DBPath,
		ReportsDir:   cfg.Bank.ReportsDir,
	})

	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)
	conn, err := db.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return cfg, conn, pathResolver, nil
}

// loadRestriction loads the validation rule set named by the configuration,
// falling back to the built-in defaults.
func loadRestriction(cfg *config.Config) (bank.Restriction, error) {
	if cfg.Bank.RestrictionPath == "" {
		return bank.DefaultRestriction(), nil
	}
	return bank.LoadRestriction(cfg.Bank.RestrictionPath)
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
