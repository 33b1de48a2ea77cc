// Package yukiclient is the public API surface of the connector.
//
// Example usage:
//
//	conn := yukiclient.New(os.Getenv("YUKI_ACCESS_KEY"))
//	if err := conn.Login(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	err := conn.ProcessInvoice(ctx, &yukiclient.SalesInvoice{...}, yukiclient.RawValues)
package yukiclient

import (
	"github.com/rezonia/yuki-connector/internal/model"
	"github.com/rezonia/yuki-connector/internal/salesxml"
	"github.com/rezonia/yuki-connector/internal/yuki"
)

// Re-export core types for public API
type (
	Connector      = yuki.Connector
	Option         = yuki.Option
	SalesInvoice   = model.SalesInvoice
	Contact        = model.Contact
	ContactPerson  = model.ContactPerson
	InvoiceLine    = model.InvoiceLine
	Product        = model.Product
	InvoiceBalance = model.InvoiceBalance
	EscapeMode     = salesxml.EscapeMode
)

// Re-export escape modes
const (
	RawValues  = salesxml.RawValues
	PreEscaped = salesxml.PreEscaped
)

// Re-export error types
type (
	ConfigurationError        = model.ConfigurationError
	AuthenticationError       = model.AuthenticationError
	AdministrationAccessError = model.AdministrationAccessError
	RemoteCallError           = model.RemoteCallError
	InvoiceRejectedError      = model.InvoiceRejectedError
)

// New creates an unauthenticated connector for the given API access key.
var New = yuki.New

// WithLogger re-exports the connector logger option
var WithLogger = yuki.WithLogger
