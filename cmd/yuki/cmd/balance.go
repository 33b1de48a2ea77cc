package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <reference>",
	Short: "Show the outstanding balance of an invoice",
	Long: `Balance looks up the outstanding item for an invoice reference and
prints the open and original amounts.

An unknown reference reports zero amounts; the service does not distinguish
it from a fully settled invoice.`,
	Args: cobra.ExactArgs(1),
	RunE: runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn := newConnector()
	if err := conn.Login(ctx); err != nil {
		return err
	}

	balance, err := conn.GetInvoiceBalance(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Reference:       %s\n", args[0])
	fmt.Printf("Open amount:     %.2f\n", balance.OpenAmount)
	fmt.Printf("Original amount: %.2f\n", balance.OriginalAmount)
	return nil
}
