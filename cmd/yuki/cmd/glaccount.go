package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/yuki-connector/internal/soap"
	"github.com/rezonia/yuki-connector/internal/yuki"
)

var (
	glDate    string
	glAccount string
	glStart   string
	glEnd     string
)

var glAccountCmd = &cobra.Command{
	Use:   "glaccount",
	Short: "Query general ledger account data",
}

var glBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Ledger balances per a transaction date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGLQuery(func(ctx context.Context, conn *yuki.Connector) (*soap.Result, error) {
			return conn.GetGLAccountBalance(ctx, glDate)
		})
	},
}

var glTransactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Transactions of one ledger account over a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGLQuery(func(ctx context.Context, conn *yuki.Connector) (*soap.Result, error) {
			return conn.GetGLAccountTransactions(ctx, glAccount, glStart, glEnd)
		})
	},
}

var glSchemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Chart of accounts of the administration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGLQuery(func(ctx context.Context, conn *yuki.Connector) (*soap.Result, error) {
			return conn.GetGLAccountScheme(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(glAccountCmd)
	glAccountCmd.AddCommand(glBalanceCmd, glTransactionsCmd, glSchemeCmd)

	glBalanceCmd.Flags().StringVar(&glDate, "date", "", "Transaction date (yyyy-mm-dd)")
	glBalanceCmd.MarkFlagRequired("date")

	glTransactionsCmd.Flags().StringVar(&glAccount, "account", "", "GL account code")
	glTransactionsCmd.Flags().StringVar(&glStart, "start", "", "Start date (yyyy-mm-dd)")
	glTransactionsCmd.Flags().StringVar(&glEnd, "end", "", "End date (yyyy-mm-dd)")
	glTransactionsCmd.MarkFlagRequired("account")
	glTransactionsCmd.MarkFlagRequired("start")
	glTransactionsCmd.MarkFlagRequired("end")
}

func runGLQuery(query func(context.Context, *yuki.Connector) (*soap.Result, error)) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn := newConnector()
	if err := conn.Login(ctx); err != nil {
		return err
	}

	res, err := query(ctx, conn)
	if err != nil {
		return err
	}
	fmt.Println(res.PayloadXML())
	return nil
}
