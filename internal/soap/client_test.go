package soap_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/yuki-connector/internal/soap"
)

func envelope(op soap.Operation, inner string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>`+
		`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">`+
		`<soap:Body><%[1]sResponse xmlns="http://www.theyukicompany.com/">`+
		`<%[1]sResult>%[2]s</%[1]sResult>`+
		`</%[1]sResponse></soap:Body></soap:Envelope>`, op, inner)
}

func TestClient_Call(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/Sales.asmx", r.URL.Path)
		assert.Equal(t, "http://www.theyukicompany.com/Authenticate", r.Header.Get("SOAPAction"))
		assert.Contains(t, r.Header.Get("Content-Type"), "text/xml")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = string(body)

		fmt.Fprint(w, envelope(soap.OpAuthenticate, "session-123"))
	}))
	defer srv.Close()

	client := soap.NewClient(soap.WithHost(srv.URL))
	res, err := client.Call(context.Background(), soap.OpAuthenticate, soap.Params{"accessKey": "secret"})
	require.NoError(t, err)

	assert.Contains(t, gotBody, "<accessKey>secret</accessKey>")
	assert.Equal(t, soap.OpAuthenticate, res.Operation())
	assert.Equal(t, "session-123", res.Text())
}

func TestClient_RawXMLParamEmbeddedUnescaped(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		fmt.Fprint(w, envelope(soap.OpProcessSalesInvoices, ""))
	}))
	defer srv.Close()

	client := soap.NewClient(soap.WithHost(srv.URL))
	payload := soap.RawXML(`<SalesInvoices><SalesInvoice><Reference>INV-1</Reference></SalesInvoice></SalesInvoices>`)
	_, err := client.Call(context.Background(), soap.OpProcessSalesInvoices, soap.Params{
		"sessionID": "s",
		"xmlDoc":    payload,
	})
	require.NoError(t, err)

	assert.Contains(t, gotBody, "<xmlDoc><SalesInvoices>")
	assert.NotContains(t, gotBody, "&lt;SalesInvoices")
}

func TestClient_MalformedRawXMLParam(t *testing.T) {
	client := soap.NewClient(soap.WithHost("http://127.0.0.1:0"))
	_, err := client.Call(context.Background(), soap.OpProcessSalesInvoices, soap.Params{
		"xmlDoc": soap.RawXML("<unclosed"),
	})

	var fault *soap.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "request", fault.Code)
}

func TestClient_SoapFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `<?xml version="1.0"?>`+
			`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">`+
			`<soap:Body><soap:Fault>`+
			`<faultcode>soap:Client</faultcode>`+
			`<faultstring>Invalid session</faultstring>`+
			`</soap:Fault></soap:Body></soap:Envelope>`)
	}))
	defer srv.Close()

	client := soap.NewClient(soap.WithHost(srv.URL))
	_, err := client.Call(context.Background(), soap.OpCheckOutstandingItem, soap.Params{"sessionID": "dead"})

	var fault *soap.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "soap:Client", fault.Code)
	assert.Equal(t, "Invalid session", fault.Message)
}

func TestClient_HTTPErrorWithoutFaultBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, envelope(soap.OpNetRevenue, ""))
	}))
	defer srv.Close()

	client := soap.NewClient(soap.WithHost(srv.URL))
	_, err := client.Call(context.Background(), soap.OpNetRevenue, nil)

	var fault *soap.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "HTTP 502", fault.Code)
}

func TestClient_HTTPErrorWithNonXMLBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html><body><h1>502 Bad Gateway</h1></body>")
	}))
	defer srv.Close()

	client := soap.NewClient(soap.WithHost(srv.URL))
	_, err := client.Call(context.Background(), soap.OpAuthenticate, soap.Params{"accessKey": "k"})

	var fault *soap.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "HTTP 502", fault.Code)
}

func TestClient_ConnectionRefused(t *testing.T) {
	client := soap.NewClient(soap.WithHost("http://127.0.0.1:1"))
	_, err := client.Call(context.Background(), soap.OpAuthenticate, soap.Params{"accessKey": "k"})

	var fault *soap.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "transport", fault.Code)
}

func TestOperation_ServiceRouting(t *testing.T) {
	assert.Equal(t, soap.ServiceSales, soap.OpAuthenticate.Service())
	assert.Equal(t, soap.ServiceSales, soap.OpProcessSalesInvoices.Service())
	assert.Equal(t, soap.ServiceSales, soap.OpCheckOutstandingItem.Service())
	assert.Equal(t, soap.ServiceAccounting, soap.OpNetRevenue.Service())
	assert.Equal(t, soap.ServiceAccounting, soap.OpGLAccountBalance.Service())
	assert.Equal(t, soap.ServiceAccounting, soap.OpGLAccountTransactions.Service())
	assert.Equal(t, soap.ServiceAccountingInfo, soap.OpGetGLAccountScheme.Service())
}

func TestDecodeEnvelope_ResultAccessors(t *testing.T) {
	inner := `<Administrations><Administration ID="42" Name="Acme BV"></Administration></Administrations>`
	res, err := soap.DecodeEnvelope(soap.OpAdministrations, []byte(envelope(soap.OpAdministrations, inner)))
	require.NoError(t, err)

	admin := res.First("Administration")
	require.NotNil(t, admin)
	assert.Equal(t, "42", admin.SelectAttrValue("ID", ""))

	assert.Contains(t, res.PayloadXML(), `<Administrations>`)
}

func TestDecodeEnvelope_EscapedTextPayload(t *testing.T) {
	inner := "&lt;SalesInvoicesImport&gt;&lt;TotalSucceeded&gt;1&lt;/TotalSucceeded&gt;&lt;/SalesInvoicesImport&gt;"
	res, err := soap.DecodeEnvelope(soap.OpProcessSalesInvoices, []byte(envelope(soap.OpProcessSalesInvoices, inner)))
	require.NoError(t, err)

	assert.Equal(t, "<SalesInvoicesImport><TotalSucceeded>1</TotalSucceeded></SalesInvoicesImport>", res.PayloadXML())
}

func TestDecodeEnvelope_Garbage(t *testing.T) {
	_, err := soap.DecodeEnvelope(soap.OpAuthenticate, []byte("not xml at all <"))
	var fault *soap.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "response", fault.Code)
}
