package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/yuki-connector/internal/logger"
	"github.com/rezonia/yuki-connector/internal/server"
)

var (
	serveAddress string
	serveDebug   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP facade for invoice submission and balance lookup",
	Long: `Serve logs in once at startup and then exposes the connector over HTTP:

  GET  /health
  POST /api/v1/invoices
  GET  /api/v1/invoices/:reference/balance`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddress, "address", "", "Listen address (env: YUKI_SERVER_ADDRESS)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable request logging")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddress == "" {
		serveAddress = cfg.ServerAddress
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn := newConnector()
	if err := conn.Login(ctx); err != nil {
		return err
	}

	log := logger.WithComponent("server")
	srv := server.NewServer(&server.Config{
		Address:      serveAddress,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * timeout,
		Debug:        serveDebug,
	}, conn, log)

	log.Info().Str("address", serveAddress).Msg("listening")
	return srv.Run()
}
