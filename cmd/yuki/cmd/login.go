package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify credentials and show the authorized administration",
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn := newConnector()
	if err := conn.Login(ctx); err != nil {
		return err
	}
	fmt.Printf("Authenticated. Administration: %s\n", conn.AdministrationID())
	return nil
}
