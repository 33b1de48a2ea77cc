package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/yuki-connector/internal/attach"
	"github.com/rezonia/yuki-connector/internal/model"
	"github.com/rezonia/yuki-connector/internal/salesxml"
)

var (
	attachFile   string
	preEscaped   bool
	printPayload bool
)

var submitCmd = &cobra.Command{
	Use:   "submit <invoice.json>",
	Short: "Submit a sales invoice for processing",
	Long: `Submit reads an invoice description from a JSON file, renders it into
the SalesInvoices XML subset and submits it for processing.

A PDF given with --attach is validated and embedded base64-encoded as the
invoice document. With --pre-escaped the field values are trusted to be
XML-safe already and are emitted verbatim.

Examples:
  yuki submit invoice.json
  yuki submit invoice.json --attach scan.pdf
  yuki submit invoice.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

var dryRun bool

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVar(&attachFile, "attach", "", "Document file to embed in the invoice")
	submitCmd.Flags().BoolVar(&preEscaped, "pre-escaped", false, "Treat field values as already XML-escaped")
	submitCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the generated XML instead of submitting")
	submitCmd.Flags().BoolVar(&printPayload, "print-payload", false, "Also print the generated XML when submitting")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	invoice, err := readInvoice(args[0])
	if err != nil {
		return err
	}
	invoice.FillDerivedAmounts()

	if attachFile != "" {
		doc, err := attach.FromFile(attachFile)
		if err != nil {
			return err
		}
		invoice.DocumentFileName = doc.FileName
		invoice.DocumentBase64 = doc.Base64
	}

	mode := salesxml.RawValues
	if preEscaped {
		mode = salesxml.PreEscaped
	}

	if dryRun {
		fmt.Println(salesxml.Build(invoice, mode))
		return nil
	}
	if printPayload {
		fmt.Println(salesxml.Build(invoice, mode))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conn := newConnector()
	if err := conn.Login(ctx); err != nil {
		return err
	}
	if err := conn.ProcessInvoice(ctx, invoice, mode); err != nil {
		var rejected *model.InvoiceRejectedError
		if errors.As(err, &rejected) {
			fmt.Fprintf(os.Stderr, "Service response:\n%s\n", rejected.Response)
		}
		return err
	}

	fmt.Printf("Invoice %s processed.\n", invoice.Reference)
	return nil
}

func readInvoice(path string) (*model.SalesInvoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read invoice file: %w", err)
	}
	var invoice model.SalesInvoice
	if err := json.Unmarshal(data, &invoice); err != nil {
		return nil, fmt.Errorf("parse invoice file %s: %w", path, err)
	}
	return &invoice, nil
}
