package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/bank"
)

var (
	openType      string
	openBalance   string
	openClients   string
	openSubbranch string
	openCurrency  string
	openInterest  string
	openOverdraft string

	updateID        string
	updateBalance   string
	updateClients   string
	updateCurrency  string
	updateInterest  string
	updateOverdraft string

	accountID string
)

// accountCmd groups the account subcommands.
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Open, inspect, update and delete accounts",
}

var accountOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open an account and attach its owners",
	Long: `Open a saving or checking account, attach every listed client as an
owner and add the opening balance to the subbranch asset total. The whole
operation is one transaction: any failure leaves the database untouched.

Example:
  bank-backoffice account open --type savingAccount --balance 1000.00 \
      --subbranch downtown --clients "c1 c2" --currency USD --interest 0.03
  bank-backoffice account open --type checkingAccount --balance 250.50 \
      --subbranch downtown --clients c3 --overdraft 100`,
	Run: runAccountOpen,
}

var accountShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display an account with its owners",
	Run:   runAccountShow,
}

var accountUpdateSavingCmd = &cobra.Command{
	Use:   "update-saving",
	Short: "Update a saving account and reconcile its owners",
	Run:   runAccountUpdateSaving,
}

var accountUpdateCheckingCmd = &cobra.Command{
	Use:   "update-checking",
	Short: "Update a checking account and reconcile its owners",
	Run:   runAccountUpdateChecking,
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an account, its ownership edges and index entries",
	Run:   runAccountDelete,
}

func init() {
	accountOpenCmd.Flags().StringVar(&openType, "type", "", "account type: savingAccount or checkingAccount (required)")
	accountOpenCmd.Flags().StringVar(&openBalance, "balance", "", "opening balance (required)")
	accountOpenCmd.Flags().StringVar(&openClients, "clients", "", "space-separated owner client ids")
	accountOpenCmd.Flags().StringVar(&openSubbranch, "subbranch", "", "managing subbranch (required)")
	accountOpenCmd.Flags().StringVar(&openCurrency, "currency", "", "currency type (saving accounts)")
	accountOpenCmd.Flags().StringVar(&openInterest, "interest", "", "interest rate (saving accounts)")
	accountOpenCmd.Flags().StringVar(&openOverdraft, "overdraft", "", "overdraft limit (checking accounts)")
	accountOpenCmd.MarkFlagRequired("type")
	accountOpenCmd.MarkFlagRequired("balance")
	accountOpenCmd.MarkFlagRequired("subbranch")

	accountShowCmd.Flags().StringVar(&accountID, "id", "", "account id (required)")
	accountShowCmd.MarkFlagRequired("id")

	accountUpdateSavingCmd.Flags().StringVar(&updateID, "id", "", "account id (required)")
	accountUpdateSavingCmd.Flags().StringVar(&updateBalance, "balance", "", "new balance (required)")
	accountUpdateSavingCmd.Flags().StringVar(&updateClients, "clients", "", "replacement owner client ids")
	accountUpdateSavingCmd.Flags().StringVar(&updateCurrency, "currency", "", "new currency type (required)")
	accountUpdateSavingCmd.Flags().StringVar(&updateInterest, "interest", "", "new interest rate (required)")
	accountUpdateSavingCmd.MarkFlagRequired("id")
	accountUpdateSavingCmd.MarkFlagRequired("balance")
	accountUpdateSavingCmd.MarkFlagRequired("currency")
	accountUpdateSavingCmd.MarkFlagRequired("interest")

	accountUpdateCheckingCmd.Flags().StringVar(&updateID, "id", "", "account id (required)")
	accountUpdateCheckingCmd.Flags().StringVar(&updateBalance, "balance", "", "new balance (required)")
	accountUpdateCheckingCmd.Flags().StringVar(&updateClients, "clients", "", "replacement owner client ids")
	accountUpdateCheckingCmd.Flags().StringVar(&updateOverdraft, "overdraft", "", "new overdraft limit (required)")
	accountUpdateCheckingCmd.MarkFlagRequired("id")
	accountUpdateCheckingCmd.MarkFlagRequired("balance")
	accountUpdateCheckingCmd.MarkFlagRequired("overdraft")

	accountDeleteCmd.Flags().StringVar(&accountID, "id", "", "account id (required)")
	accountDeleteCmd.MarkFlagRequired("id")

	accountCmd.AddCommand(accountOpenCmd)
	accountCmd.AddCommand(accountShowCmd)
	accountCmd.AddCommand(accountUpdateSavingCmd)
	accountCmd.AddCommand(accountUpdateCheckingCmd)
	accountCmd.AddCommand(accountDeleteCmd)
}

func runAccountOpen(cmd *cobra.Command, args []string) {
	cfg, conn, _, err := loadEnvironment()
	exitOnError(err, "failed to initialize")
	defer conn.Close()

	rules, err := loadRestriction(cfg)
	exitOnError(err, "failed to load validation rules")

	submission := bank.AccountSubmission{
		ClientIDs:     openClients,
		AccountType:   openType,
		Balance:       openBalance,
		CurrencyType:  openCurrency,
		SubbranchName: openSubbranch,
		Overdraft:     openOverdraft,
		Interest:      openInterest,
	}

	ctx := context.Background()
	writer := bank.NewLedgerWriter()

	var newID string
	err = conn.TransactionContext(ctx, nil, func(tx *sql.Tx) error {
		var txErr error
		newID, txErr = writer.CreateAccountWithOwners(ctx, tx, submission, rules)
		return txErr
	})
	exitOnError(err, "failed to open account")

	slog.Info("Account opened", "account_id", newID, "subbranch", openSubbranch)
	fmt.Println(newID)
}

func runAccountShow(cmd *cobra.Command, args []string) {
	_, conn, _, err := loadEnvironment()
	exitOnError(err, "failed to initialize")
	defer conn.Close()

	ctx := context.Background()
	acct, err := bank.QueryAccountByID(ctx, conn.GetDB(), accountID)
	exitOnError(err, "failed to query account")

	clients, err := bank.QueryAssociatedClients(ctx, conn.GetDB(), accountID)
	exitOnError(err, "failed to query owners")

	fmt.Printf("Account:   %s\n", acct.ID)
	fmt.Printf("Type:      %s\n", acct.Kind)
	fmt.Printf("Balance:   %s\n", acct.Balance.String())
	fmt.Printf("Opened:    %s\n", acct.OpenDate.Format("2006-01-02"))
	if saving, ok := acct.Saving.Get(); ok {
		fmt.Printf("Interest:  %g\n", saving.Interest)
		fmt.Printf("Currency:  %s\n", saving.CurrencyType)
	}
	if checking, ok := acct.Checking.Get(); ok {
		fmt.Printf("Overdraft: %s\n", checking.Overdraft.String())
	}
	fmt.Printf("Owners:    %s\n", strings.Join(clients, " "))
}

func runAccountUpdateSaving(cmd *cobra.Command, args []string) {
	cfg, conn, _, err := loadEnvironment()
	exitOnError(err, "failed to initialize")
	defer conn.Close()

	rules, err := loadRestriction(cfg)
	exitOnError(err, "failed to load validation rules")

	update := bank.SavingAccountUpdate{
		ClientIDs:    updateClients,
		Balance:      updateBalance,
		CurrencyType: updateCurrency,
		Interest:     updateInterest,
	}

	ctx := context.Background()
	writer := bank.NewLedgerWriter()

	err = conn.TransactionContext(ctx, nil, func(tx *sql.Tx) error {
		return writer.UpdateSavingAccount(ctx, tx, updateID, update, rules)
	})
	exitOnError(err, "failed to update account")

	slog.Info("Account updated", "account_id", updateID)
	fmt.Printf("Updated %s\n", updateID)
}

func runAccountUpdateChecking(cmd *cobra.Command, args []string) {
	cfg, conn, _, err := loadEnvironment()
	exitOnError(err, "failed to initialize")
	defer conn.Close()

	rules, err := loadRestriction(cfg)
	exitOnError(err, "failed to load validation rules")

	update := bank.CheckingAccountUpdate{
		ClientIDs: updateClients,
		Balance:   updateBalance,
		Overdraft: updateOverdraft,
	}

	ctx := context.Background()
	writer := bank.NewLedgerWriter()

	err = conn.TransactionContext(ctx, nil, func(tx *sql.Tx) error {
		return writer.UpdateCheckingAccount(ctx, tx, updateID, update, rules)
	})
	exitOnError(err, "failed to update account")

	slog.Info("Account updated", "account_id", updateID)
	fmt.Printf("Updated %s\n", updateID)
}

func runAccountDelete(cmd *cobra.Command, args []string) {
	_, conn, _, err := loadEnvironment()
	exitOnError(err, "failed to initialize")
	defer conn.Close()

	ctx := context.Background()
	writer := bank.NewLedgerWriter()

	err = conn.TransactionContext(ctx, nil, func(tx *sql.Tx) error {
		return writer.DeleteAccount(ctx, tx, accountID)
	})
	exitOnError(err, "failed to delete account")

	slog.Info("Account deleted", "account_id", accountID)
	fmt.Printf("Deleted %s\n", accountID)
}
