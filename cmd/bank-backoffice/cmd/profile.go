package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/bank"
	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/db"
	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/export"
	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/stats"
)

var (
	profileSubbranch string
	profileExport    bool
)

// profileCmd represents the profile command.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Display subbranch profile statistics",
	Long: `Display a subbranch profile: city, managed asset total, and
year/quarter/month statistics over the trailing window for saving account
balances, checking account balances and loan payments.

Example:
  bank-backoffice profile --subbranch downtown
  bank-backoffice profile --subbranch downtown --export`,
	Run: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileSubbranch, "subbranch", "", "subbranch name (required)")
	profileCmd.Flags().BoolVar(&profileExport, "export", false, "write the report under the reports directory")
	profileCmd.MarkFlagRequired("subbranch")
}

func runProfile(cmd *cobra.Command, args []string) {
	cfg, conn, pathResolver, err := loadEnvironment()
	exitOnError(err, "failed to initialize")
	defer conn.Close()

	ctx := context.Background()
	q := conn.GetDB()

	sb, err := bank.QuerySubbranch(ctx, q, profileSubbranch)
	exitOnError(err, "failed to query subbranch")

	managed, err := bank.QueryManagedAccountIDs(ctx, q, profileSubbranch)
	exitOnError(err, "failed to query managed accounts")

	savingRecords, err := accountRecords(ctx, q, managed.Saving)
	exitOnError(err, "failed to query saving accounts")

	checkingRecords, err := accountRecords(ctx, q, managed.Checking)
	exitOnError(err, "failed to query checking accounts")

	paymentRecords, err := paymentRecords(ctx, q, profileSubbranch)
	exitOnError(err, "failed to query loan payments")

	window := cfg.Bank.StatWindowYears
	startYear := stats.WindowStartYear(time.Now(), window)

	var sections []string
	for _, section := range []struct {
		title   string
		records []stats.AmountAt
	}{
		{"saving accounts", savingRecords},
		{"checking accounts", checkingRecords},
		{"loan payments", paymentRecords},
	} {
		grid := stats.CollectAmounts(section.records, startYear, window)
		report := stats.BuildReport(grid, startYear)
		sections = append(sections, stats.FormatReport(
			fmt.Sprintf("%s %s", profileSubbranch, section.title), report))
	}

	fmt.Printf("Subbranch: %s\n", sb.Name)
	fmt.Printf("City:      %s\n", sb.City)
	fmt.Printf("Assets:    %s\n\n", sb.Asset.String())

	content := strings.Join(sections, "\n")
	fmt.Print(content)

	if profileExport {
		repo := export.NewFileSystemRepository(pathResolver)
		path, err := repo.WriteReport(profileSubbranch, time.Now().Format("2006-01-02"), content)
		exitOnError(err, "failed to export report")
		slog.Info("Report exported", "path", path)
		fmt.Printf("\nExported to %s\n", path)
	}
}

// accountRecords loads each account and pairs its balance with its open date.
func accountRecords(ctx context.Context, q db.Querier, accountIDs []string) ([]stats.AmountAt, error) {
	var records []stats.AmountAt
	for _, id := range accountIDs {
		acct, err := bank.QueryAccountByID(ctx, q, id)
		if err != nil {
			return nil, err
		}
		records = append(records, stats.AmountAt{Amount: acct.Balance, Date: acct.OpenDate})
	}
	return records, nil
}

// paymentRecords flattens every payment of every loan of the subbranch.
func paymentRecords(ctx context.Context, q db.Querier, subbranchName string) ([]stats.AmountAt, error) {
	loans, err := bank.QueryLoansBySubbranch(ctx, q, subbranchName)
	if err != nil {
		return nil, err
	}

	var records []stats.AmountAt
	for _, loan := range loans {
		payments, err := bank.QueryPaymentsByLoan(ctx, q, loan.ID)
		if err != nil {
			return nil, err
		}
		for _, p := range payments {
			records = append(records, stats.AmountAt{Amount: p.Amount, Date: p.Date})
		}
	}
	return records, nil
}
