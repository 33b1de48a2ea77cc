package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	revenueStart string
	revenueEnd   string
)

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Fetch the net revenue report for a date range",
	RunE:  runRevenue,
}

func init() {
	rootCmd.AddCommand(revenueCmd)

	revenueCmd.Flags().StringVar(&revenueStart, "start", "", "Start date (yyyy-mm-dd)")
	revenueCmd.Flags().StringVar(&revenueEnd, "end", "", "End date (yyyy-mm-dd)")
	revenueCmd.MarkFlagRequired("start")
	revenueCmd.MarkFlagRequired("end")
}

func runRevenue(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn := newConnector()
	if err := conn.Login(ctx); err != nil {
		return err
	}

	res, err := conn.GetNetRevenue(ctx, revenueStart, revenueEnd)
	if err != nil {
		return err
	}
	fmt.Println(res.PayloadXML())
	return nil
}
