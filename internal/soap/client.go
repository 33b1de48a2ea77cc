// Package soap is the transport for the remote bookkeeping web service:
// SOAP 1.1 request envelopes over HTTP, one endpoint per service variant.
package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
)

const (
	envelopeNS  = "http://schemas.xmlsoap.org/soap/envelope/"
	operationNS = "http://www.theyukicompany.com/"

	// DefaultTimeout bounds a single remote call.
	DefaultTimeout = 60 * time.Second
)

// Params is the parameter bag for one operation. Plain values are emitted
// as text elements; RawXML values are embedded as literal child elements.
type Params map[string]any

// RawXML marks a parameter value as a pre-built XML fragment that must be
// embedded unescaped, element for element.
type RawXML string

// Fault is the normalized failure of a remote call: a SOAP fault, an HTTP
// error status, or a plain transport problem.
type Fault struct {
	Code    string
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault [%s]: %s", f.Code, f.Message)
}

// Caller issues one named operation against the remote service. The
// connector depends on this interface, never on the concrete client, so
// tests substitute a stub.
type Caller interface {
	Call(ctx context.Context, op Operation, params Params) (*Result, error)
}

// Client is the HTTP implementation of Caller.
type Client struct {
	httpClient *http.Client
	host       string
	log        zerolog.Logger
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithHost overrides the service host (scheme + authority)
func WithHost(host string) Option {
	return func(c *Client) { c.host = host }
}

// WithLogger sets the transport logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a transport client against the production host.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		host:       DefaultHost,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call performs a single attempt of the operation. Every failure mode is
// surfaced as a *Fault; nothing is retried here.
func (c *Client) Call(ctx context.Context, op Operation, params Params) (*Result, error) {
	body, err := encodeEnvelope(op, params)
	if err != nil {
		return nil, err
	}

	url := op.endpoint(c.host)
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if reqErr != nil {
		return nil, &Fault{Code: "transport", Message: reqErr.Error()}
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", operationNS+string(op))

	c.log.Debug().Str("operation", string(op)).Str("url", url).Msg("soap call")

	resp, respErr := c.httpClient.Do(req)
	if respErr != nil {
		return nil, &Fault{Code: "transport", Message: respErr.Error()}
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, &Fault{Code: "transport", Message: readErr.Error()}
	}

	result, decErr := DecodeEnvelope(op, data)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// A real fault body carries better diagnostics than the bare
		// status, but an unparsable body (a proxy error page, say) must
		// not mask the status code.
		var fault *Fault
		if errors.As(decErr, &fault) && fault.Code != "response" {
			return nil, fault
		}
		return nil, &Fault{
			Code:    fmt.Sprintf("HTTP %d", resp.StatusCode),
			Message: http.StatusText(resp.StatusCode),
		}
	}
	if decErr != nil {
		return nil, decErr
	}
	return result, nil
}

// encodeEnvelope builds the SOAP 1.1 request document. Parameters are
// emitted in sorted name order so requests are reproducible.
func encodeEnvelope(op Operation, params Params) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", envelopeNS)
	body := env.CreateElement("soap:Body")

	opEl := body.CreateElement(string(op))
	opEl.CreateAttr("xmlns", operationNS)

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		el := opEl.CreateElement(name)
		switch v := params[name].(type) {
		case RawXML:
			frag := etree.NewDocument()
			if err := frag.ReadFromString(string(v)); err != nil || frag.Root() == nil {
				return nil, &Fault{
					Code:    "request",
					Message: fmt.Sprintf("parameter %s is not well-formed XML: %v", name, err),
				}
			}
			el.AddChild(frag.Root().Copy())
		case string:
			el.SetText(v)
		default:
			el.SetText(fmt.Sprint(v))
		}
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, &Fault{Code: "request", Message: err.Error()}
	}
	return out, nil
}

// DecodeEnvelope parses a SOAP 1.1 response for the operation. A fault in
// the body is returned as *Fault; otherwise the <OperationResult> element is
// located (it may legitimately be absent for empty results).
func DecodeEnvelope(op Operation, data []byte) (*Result, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &Fault{Code: "response", Message: fmt.Sprintf("unparsable envelope: %v", err)}
	}

	root := doc.Root()
	if root == nil || root.Tag != "Envelope" {
		return nil, &Fault{Code: "response", Message: "missing soap envelope"}
	}
	body := childLocal(root, "Body")
	if body == nil {
		return nil, &Fault{Code: "response", Message: "missing soap body"}
	}

	if fault := childLocal(body, "Fault"); fault != nil {
		f := &Fault{Code: "soap:Server", Message: "unspecified fault"}
		if code := childLocal(fault, "faultcode"); code != nil {
			f.Code = code.Text()
		}
		if msg := childLocal(fault, "faultstring"); msg != nil {
			f.Message = msg.Text()
		}
		return nil, f
	}

	res := &Result{op: op, doc: doc}
	if wrapper := childLocal(body, string(op)+"Response"); wrapper != nil {
		res.result = childLocal(wrapper, string(op)+"Result")
	}
	return res, nil
}
