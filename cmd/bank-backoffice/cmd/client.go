package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shunichi-ikebuchi/bank-backoffice/pkg/bank"
)

var (
	clientID   string
	clientName string
	clientTel  string
	clientAddr string
)

// clientCmd groups the client subcommands.
var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Create and inspect clients",
}

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a client",
	Run:   runClientAdd,
}

var clientShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a client",
	Run:   runClientShow,
}

func init() {
	clientAddCmd.Flags().StringVar(&clientID, "id", "", "client id (required)")
	clientAddCmd.Flags().StringVar(&clientName, "name", "", "client name")
	clientAddCmd.Flags().StringVar(&clientTel, "tel", "", "client telephone")
	clientAddCmd.Flags().StringVar(&clientAddr, "addr", "", "client address")
	clientAddCmd.MarkFlagRequired("id")

	clientShowCmd.Flags().StringVar(&clientID, "id", "", "client id (required)")
	clientShowCmd.MarkFlagRequired("id")

	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientShowCmd)
}

func optionalString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func runClientAdd(cmd *cobra.Command, args []string) {
	_, conn, _, err := loadEnvironment()
	exitOnError(err, "failed to initialize")
	defer conn.Close()

	client := bank.Client{
		ID:   clientID,
		Name: optionalString(clientName),
		Tel:  optionalString(clientTel),
		Addr: optionalString(clientAddr),
	}

	err = bank.CreateClient(context.Background(), conn.GetDB(), client)
	exitOnError(err, "failed to create client")

	slog.Info("Client created", "client_id", clientID)
	fmt.Printf("Created %s\n", clientID)
}

func runClientShow(cmd *cobra.Command, args []string) {
	_, conn, _, err := loadEnvironment()
	exitOnError(err, "failed to initialize")
	defer conn.Close()

	client, err := bank.QueryClient(context.Background(), conn.GetDB(), clientID)
	exitOnError(err, "failed to query client")

	fmt.Printf("Client: %s\n", client.ID)
	if client.Name.Valid {
		fmt.Printf("Name:   %s\n", client.Name.String)
	}
	if client.Tel.Valid {
		fmt.Printf("Tel:    %s\n", client.Tel.String)
	}
	if client.Addr.Valid {
		fmt.Printf("Addr:   %s\n", client.Addr.String)
	}
}
