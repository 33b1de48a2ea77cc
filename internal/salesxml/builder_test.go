package salesxml_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/yuki-connector/internal/model"
	"github.com/rezonia/yuki-connector/internal/salesxml"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBuild_MinimalSkeleton(t *testing.T) {
	inv := &model.SalesInvoice{
		Lines: []model.InvoiceLine{{}},
	}

	got := salesxml.Build(inv, salesxml.RawValues)

	want := `<SalesInvoices xmlns="urn:xmlns:http://www.theyukicompany.com:salesinvoices">` +
		`<SalesInvoice>` +
		`<Process>true</Process>` +
		`<Contact></Contact>` +
		`<InvoiceLines><InvoiceLine>` +
		`<Product><Description> </Description><Reference> </Reference></Product>` +
		`</InvoiceLine></InvoiceLines>` +
		`</SalesInvoice>` +
		`</SalesInvoices>`
	assert.Equal(t, want, got)
}

func TestBuild_FullInvoiceFieldOrder(t *testing.T) {
	inv := &model.SalesInvoice{
		Reference:           "INV-001",
		Subject:             "Consulting",
		PaymentMethod:       "ElectronicTransfer",
		PaymentID:           "PAY-9",
		EmailToCustomer:     true,
		SentToPeppol:        "true",
		PurchaseOrderNumber: "PO-7",
		Date:                "2024-03-01",
		DueDate:             "2024-03-31",
		Currency:            "EUR",
		ProjectCode:         "PRJ-1",
		Remarks:             "March retainer",
		Contact: model.Contact{
			ContactCode:  "C100",
			FullName:     "Acme BV",
			CountryCode:  "NL",
			City:         "Amsterdam",
			Zipcode:      "1017 AB",
			AddressLine1: "Herengracht 1",
			EmailAddress: "billing@acme.example",
			VATNumber:    "NL001234567B01",
			ContactType:  "Company",
		},
		ContactPerson: model.ContactPerson{FullName: "J. de Vries"},
		Lines: []model.InvoiceLine{
			{
				ProductQuantity: dec("2"),
				LineAmount:      dec("1500"),
				LineVATAmount:   dec("315"),
				Product: model.Product{
					Description:   "Consulting day",
					Reference:     "DAY",
					SalesPrice:    dec("750"),
					VATPercentage: dec("21"),
					VATType:       "1",
					GLAccountCode: "8000",
				},
			},
		},
	}

	got := salesxml.Build(inv, salesxml.RawValues)

	want := `<SalesInvoices xmlns="urn:xmlns:http://www.theyukicompany.com:salesinvoices">` +
		`<SalesInvoice>` +
		`<Reference>INV-001</Reference>` +
		`<Subject>Consulting</Subject>` +
		`<PaymentMethod>ElectronicTransfer</PaymentMethod>` +
		`<PaymentID>PAY-9</PaymentID>` +
		`<Process>true</Process>` +
		`<EmailToCustomer>true</EmailToCustomer>` +
		`<SentToPeppol>true</SentToPeppol>` +
		`<PurchaseOrderNumber>PO-7</PurchaseOrderNumber>` +
		`<Date>2024-03-01</Date>` +
		`<DueDate>2024-03-31</DueDate>` +
		`<Currency>EUR</Currency>` +
		`<ProjectCode>PRJ-1</ProjectCode>` +
		`<Remarks>March retainer</Remarks>` +
		`<Contact>` +
		`<ContactCode>C100</ContactCode>` +
		`<FullName>Acme BV</FullName>` +
		`<CountryCode>NL</CountryCode>` +
		`<City>Amsterdam</City>` +
		`<Zipcode>1017 AB</Zipcode>` +
		`<AddressLine_1>Herengracht 1</AddressLine_1>` +
		`<EmailAddress>billing@acme.example</EmailAddress>` +
		`<VATNumber>NL001234567B01</VATNumber>` +
		`<ContactType>Company</ContactType>` +
		`</Contact>` +
		`<ContactPerson><FullName>J. de Vries</FullName></ContactPerson>` +
		`<InvoiceLines><InvoiceLine>` +
		`<ProductQuantity>2</ProductQuantity>` +
		`<LineAmount>1500</LineAmount>` +
		`<LineVATAmount>315</LineVATAmount>` +
		`<Product>` +
		`<Description>Consulting day</Description>` +
		`<Reference>DAY</Reference>` +
		`<SalesPrice>750</SalesPrice>` +
		`<VATPercentage>21</VATPercentage>` +
		`<VATType>1</VATType>` +
		`<GLAccountCode>8000</GLAccountCode>` +
		`</Product>` +
		`</InvoiceLine></InvoiceLines>` +
		`</SalesInvoice>` +
		`</SalesInvoices>`
	assert.Equal(t, want, got)
}

func TestBuild_EscapeModes(t *testing.T) {
	inv := &model.SalesInvoice{Reference: "A<&B"}

	raw := salesxml.Build(inv, salesxml.RawValues)
	assert.Contains(t, raw, "<Reference>A&lt;&amp;B</Reference>")

	trusted := salesxml.Build(inv, salesxml.PreEscaped)
	assert.Contains(t, trusted, "<Reference>A<&B</Reference>")
}

func TestBuild_EmailToCustomerFlag(t *testing.T) {
	inv := &model.SalesInvoice{PaymentMethod: "Cash"}

	got := salesxml.Build(inv, salesxml.RawValues)
	assert.NotContains(t, got, "EmailToCustomer")

	inv.EmailToCustomer = true
	got = salesxml.Build(inv, salesxml.RawValues)
	assert.Contains(t, got, "<Process>true</Process><EmailToCustomer>true</EmailToCustomer>")
}

func TestBuild_PaymentIDRequiresPaymentMethod(t *testing.T) {
	inv := &model.SalesInvoice{PaymentID: "PAY-1"}
	got := salesxml.Build(inv, salesxml.RawValues)
	assert.NotContains(t, got, "PaymentID")

	inv.PaymentMethod = "DirectDebit"
	got = salesxml.Build(inv, salesxml.RawValues)
	assert.Contains(t, got, "<PaymentMethod>DirectDebit</PaymentMethod><PaymentID>PAY-1</PaymentID><Process>true</Process>")
}

func TestBuild_SentToPeppolOnlyWhenExplicit(t *testing.T) {
	inv := &model.SalesInvoice{}
	assert.NotContains(t, salesxml.Build(inv, salesxml.RawValues), "SentToPeppol")

	inv.SentToPeppol = "false"
	assert.Contains(t, salesxml.Build(inv, salesxml.RawValues), "<SentToPeppol>false</SentToPeppol>")
}

func TestBuild_ExplicitZeroAmountsEmitted(t *testing.T) {
	zero := decimal.Zero
	inv := &model.SalesInvoice{
		Lines: []model.InvoiceLine{
			{
				ProductQuantity: &zero,
				LineAmount:      nil,
			},
		},
	}

	got := salesxml.Build(inv, salesxml.RawValues)
	assert.Contains(t, got, "<ProductQuantity>0</ProductQuantity>")
	assert.NotContains(t, got, "LineAmount")
}

func TestBuild_NoInvoiceLinesElementWithoutLines(t *testing.T) {
	inv := &model.SalesInvoice{Reference: "INV-1"}
	assert.NotContains(t, salesxml.Build(inv, salesxml.RawValues), "InvoiceLines")
}

func TestBuild_LineOrderPreserved(t *testing.T) {
	inv := &model.SalesInvoice{
		Lines: []model.InvoiceLine{
			{Product: model.Product{Description: "first"}},
			{Product: model.Product{Description: "second"}},
			{Product: model.Product{Description: "third"}},
		},
	}

	got := salesxml.Build(inv, salesxml.RawValues)
	first := strings.Index(got, "first")
	second := strings.Index(got, "second")
	third := strings.Index(got, "third")
	require.True(t, first > 0 && second > first && third > second)
}

func TestBuild_Deterministic(t *testing.T) {
	inv := &model.SalesInvoice{
		Reference: "INV-42",
		Contact:   model.Contact{FullName: "Acme BV"},
		Lines: []model.InvoiceLine{
			{LineAmount: dec("99.95"), Product: model.Product{Description: "Widget"}},
		},
	}

	assert.Equal(t,
		salesxml.Build(inv, salesxml.RawValues),
		salesxml.Build(inv, salesxml.RawValues))
}

func TestBuild_BlankFieldSkippedAfterTrim(t *testing.T) {
	inv := &model.SalesInvoice{Subject: "   "}
	assert.NotContains(t, salesxml.Build(inv, salesxml.RawValues), "Subject")
}
