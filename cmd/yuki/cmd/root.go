package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/yuki-connector/internal/config"
	"github.com/rezonia/yuki-connector/internal/logger"
	"github.com/rezonia/yuki-connector/internal/soap"
	"github.com/rezonia/yuki-connector/internal/yuki"
)

var (
	version = "1.0.0"

	// Global flags
	accessKey string
	host      string
	logLevel  string
	logFormat string
	timeout   time.Duration

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "yuki",
	Short: "Submit sales invoices and query accounting data via the Yuki API",
	Long: `yuki is a CLI connector for the Yuki bookkeeping web service.

It authenticates with an API access key, resolves the administration the
key is authorized for, and then submits invoices or queries accounting
data through the SOAP API.

Examples:
  # Verify credentials and show the administration
  yuki login --access-key <key>

  # Submit an invoice described in a JSON file, attaching the source PDF
  yuki submit invoice.json --attach scan.pdf

  # Outstanding balance of an invoice reference
  yuki balance INV-2024-001

  # Net revenue for a date range
  yuki revenue --start 2024-01-01 --end 2024-12-31

  # Run the HTTP facade
  yuki serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&accessKey, "access-key", "", "API access key (env: YUKI_ACCESS_KEY)")
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "Service host override (env: YUKI_HOST)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (env: YUKI_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format, console or json (env: YUKI_LOG_FORMAT)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP timeout per remote call (env: YUKI_HTTP_TIMEOUT)")

	cobra.OnInitialize(initConfig)
}

// initConfig merges environment configuration under explicit flags.
func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		cobra.CheckErr(err)
	}
	if accessKey == "" {
		accessKey = cfg.AccessKey
	}
	if host == "" {
		host = cfg.Host
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	if logFormat == "" {
		logFormat = cfg.LogFormat
	}
	if timeout == 0 {
		timeout = cfg.HTTPTimeout
	}
	if err := logger.Setup(logLevel, logFormat); err != nil {
		cobra.CheckErr(fmt.Errorf("logger setup: %w", err))
	}
}

// newConnector wires a connector from the resolved configuration.
func newConnector() *yuki.Connector {
	clientOpts := []soap.Option{
		soap.WithHTTPClient(&http.Client{Timeout: timeout}),
		soap.WithLogger(logger.WithComponent("soap")),
	}
	if host != "" {
		clientOpts = append(clientOpts, soap.WithHost(host))
	}
	return yuki.New(accessKey,
		yuki.WithCaller(soap.NewClient(clientOpts...)),
		yuki.WithLogger(logger.WithComponent("connector")),
	)
}
