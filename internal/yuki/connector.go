// Package yuki is the connector to the remote bookkeeping service: it owns
// the authenticated session, funnels every named operation through one
// gateway, and turns structured responses into typed results or classified
// errors.
//
// A connector instance is meant for single-threaded use. Independent
// instances are fully isolated and safe to use concurrently.
package yuki

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rezonia/yuki-connector/internal/model"
	"github.com/rezonia/yuki-connector/internal/salesxml"
	"github.com/rezonia/yuki-connector/internal/soap"
)

// Connector is a client for one administration of the remote service.
type Connector struct {
	accessKey string
	caller    soap.Caller
	log       zerolog.Logger
	session   session
}

// Option configures the connector
type Option func(*Connector)

// WithCaller substitutes the transport, mainly for tests
func WithCaller(caller soap.Caller) Option {
	return func(c *Connector) { c.caller = caller }
}

// WithLogger sets the connector logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Connector) { c.log = log }
}

// New creates an unauthenticated connector for the given API access key.
func New(accessKey string, opts ...Option) *Connector {
	c := &Connector{
		accessKey: accessKey,
		caller:    soap.NewClient(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AdministrationID returns the administration resolved during Login, or the
// empty string before that.
func (c *Connector) AdministrationID() string {
	return c.session.administrationID
}

// Login performs the two-step handshake: authenticate the access key, then
// resolve the administration the key is authorized for. It must succeed
// before any other operation.
func (c *Connector) Login(ctx context.Context) error {
	if strings.TrimSpace(c.accessKey) == "" {
		return model.NewConfigurationError("access key", "no API access key configured")
	}

	res, err := c.invoke(ctx, soap.OpAuthenticate, soap.Params{"accessKey": c.accessKey})
	if err != nil {
		return err
	}
	sessionID := strings.TrimSpace(res.Text())
	if sessionID == "" {
		return model.NewAuthenticationError("service returned no session identifier")
	}

	res, err = c.invoke(ctx, soap.OpAdministrations, soap.Params{"sessionID": sessionID})
	if err != nil {
		return err
	}
	administrationID, err := firstAdministrationID(res)
	if err != nil {
		return err
	}

	c.session = session{id: sessionID, administrationID: administrationID}
	c.log.Info().Str("administration", administrationID).Msg("session established")
	return nil
}

// ProcessInvoice serializes the invoice and submits it for creation. The
// outcome is binary: nil, or a classified error. A business rejection comes
// back as *model.InvoiceRejectedError with the raw result attached.
func (c *Connector) ProcessInvoice(ctx context.Context, inv *model.SalesInvoice, mode salesxml.EscapeMode) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	payload := salesxml.Build(inv, mode)
	res, err := c.invoke(ctx, soap.OpProcessSalesInvoices, soap.Params{
		"sessionID":        c.session.id,
		"administrationID": c.session.administrationID,
		"xmlDoc":           soap.RawXML(payload),
	})
	if err != nil {
		return err
	}
	return interpretProcessResult(res)
}

// GetInvoiceBalance looks up the outstanding item for an invoice reference.
// Absent amounts come back as zero; the service does not distinguish a
// settled invoice from an unknown reference.
func (c *Connector) GetInvoiceBalance(ctx context.Context, reference string) (*model.InvoiceBalance, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	res, err := c.invoke(ctx, soap.OpCheckOutstandingItem, soap.Params{
		"sessionID":        c.session.id,
		"administrationID": c.session.administrationID,
		"invoiceReference": reference,
	})
	if err != nil {
		return nil, err
	}
	return interpretOutstandingItem(res), nil
}

// GetNetRevenue fetches the net revenue report for the date range. The
// structured result is handed back as-is.
func (c *Connector) GetNetRevenue(ctx context.Context, startDate, endDate string) (*soap.Result, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	res, err := c.invoke(ctx, soap.OpNetRevenue, soap.Params{
		"sessionID":        c.session.id,
		"administrationID": c.session.administrationID,
		"StartDate":        startDate,
		"EndDate":          endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("net revenue for administration %s from %s to %s: %w",
			c.session.administrationID, startDate, endDate, err)
	}
	return res, nil
}

// GetGLAccountBalance fetches general ledger balances per the given date.
func (c *Connector) GetGLAccountBalance(ctx context.Context, date string) (*soap.Result, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	res, err := c.invoke(ctx, soap.OpGLAccountBalance, soap.Params{
		"sessionID":        c.session.id,
		"administrationID": c.session.administrationID,
		"transactionDate":  date,
	})
	if err != nil {
		return nil, fmt.Errorf("gl account balance for administration %s per %s: %w",
			c.session.administrationID, date, err)
	}
	return res, nil
}

// GetGLAccountTransactions fetches ledger transactions of one account over
// a date range.
func (c *Connector) GetGLAccountTransactions(ctx context.Context, glAccountCode, startDate, endDate string) (*soap.Result, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	res, err := c.invoke(ctx, soap.OpGLAccountTransactions, soap.Params{
		"sessionID":        c.session.id,
		"administrationID": c.session.administrationID,
		"GLAccountCode":    glAccountCode,
		"StartDate":        startDate,
		"EndDate":          endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("gl account transactions of %s for administration %s from %s to %s: %w",
			glAccountCode, c.session.administrationID, startDate, endDate, err)
	}
	return res, nil
}

// GetGLAccountScheme fetches the chart of accounts of the administration.
func (c *Connector) GetGLAccountScheme(ctx context.Context) (*soap.Result, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}
	res, err := c.invoke(ctx, soap.OpGetGLAccountScheme, soap.Params{
		"sessionID":        c.session.id,
		"administrationID": c.session.administrationID,
	})
	if err != nil {
		return nil, fmt.Errorf("gl account scheme for administration %s: %w",
			c.session.administrationID, err)
	}
	return res, nil
}

// invoke is the single funnel for every remote operation. A transport fault
// never passes through unwrapped: it becomes a RemoteCallError carrying the
// operation name and the original diagnostic.
func (c *Connector) invoke(ctx context.Context, op soap.Operation, params soap.Params) (*soap.Result, error) {
	res, err := c.caller.Call(ctx, op, params)
	if err != nil {
		var fault *soap.Fault
		if errors.As(err, &fault) {
			c.log.Error().Str("operation", string(op)).Str("code", fault.Code).Msg(fault.Message)
			return nil, model.NewRemoteCallError(string(op), fault.Code+": "+fault.Message, err)
		}
		return nil, model.NewRemoteCallError(string(op), err.Error(), err)
	}
	return res, nil
}

func (c *Connector) requireSession() error {
	if !c.session.authenticated() {
		return model.NewConfigurationError("session", "Login must complete before this operation")
	}
	return nil
}
