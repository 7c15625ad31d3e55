package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/bank"
)

var (
	subbranchName string
	subbranchCity string
)

// subbranchCmd groups the subbranch subcommands.
var subbranchCmd = &cobra.Command{
	Use:   "subbranch",
	Short: "Create and inspect subbranches",
}

var subbranchAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a subbranch with a zero asset total",
	Run:   runSubbranchAdd,
}

var subbranchShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a subbranch and its managed asset total",
	Run:   runSubbranchShow,
}

func init() {
	subbranchAddCmd.Flags().StringVar(&subbranchName, "name", "", "subbranch name (required)")
	subbranchAddCmd.Flags().StringVar(&subbranchCity, "city", "", "city (required)")
	subbranchAddCmd.MarkFlagRequired("name")
	subbranchAddCmd.MarkFlagRequired("city")

	subbranchShowCmd.Flags().StringVar(&subbranchName, "name", "", "subbranch name (required)")
	subbranchShowCmd.MarkFlagRequired("name")

	subbranchCmd.AddCommand(subbranchAddCmd)
	subbranchCmd.AddCommand(subbranchShowCmd)
}

func runSubbranchAdd(cmd *cobra.Command, args []string) {
	_, conn, _, err := loadEnvironment()
	exitOnError(err, "failed to initialize")
	defer conn.Close()

	err = bank.CreateSubbranch(context.Background(), conn.GetDB(), subbranchName, subbranchCity)
	exitOnError(err, "failed to create subbranch")

	slog.Info("Subbranch created", "name", subbranchName, "city", subbranchCity)
	fmt.Printf("Created %s\n", subbranchName)
}

func runSubbranchShow(cmd *cobra.Command, args []string) {
	_, conn, _, err := loadEnvironment()
	exitOnError(err, "failed to initialize")
	defer conn.Close()

	sb, err := bank.QuerySubbranch(context.Background(), conn.GetDB(), subbranchName)
	exitOnError(err, "failed to query subbranch")

	fmt.Printf("Subbranch: %s\n", sb.Name)
	fmt.Printf("City:      %s\n", sb.City)
	fmt.Printf("Assets:    %s\n", sb.Asset.String())
}
