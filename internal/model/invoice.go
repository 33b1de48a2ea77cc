package model

import (
	"github.com/shopspring/decimal"

	money "github.com/rezonia/yuki-connector/internal/decimal"
)

// SalesInvoice is a single invoice to be submitted through the
// ProcessSalesInvoices operation. Scalar fields are passed through as-is;
// empty fields are left out of the generated document.
type SalesInvoice struct {
	Reference           string `json:"reference,omitempty"`
	Subject             string `json:"subject,omitempty"`
	PaymentMethod       string `json:"payment_method,omitempty"`
	PaymentID           string `json:"payment_id,omitempty"` // sent only together with PaymentMethod
	EmailToCustomer     bool   `json:"email_to_customer,omitempty"`
	SentToPeppol        string `json:"sent_to_peppol,omitempty"` // sent only when explicitly set
	PurchaseOrderNumber string `json:"purchase_order_number,omitempty"`
	Date                string `json:"date,omitempty"`
	DueDate             string `json:"due_date,omitempty"`
	Currency            string `json:"currency,omitempty"`
	ProjectCode         string `json:"project_code,omitempty"`
	Remarks             string `json:"remarks,omitempty"`
	DocumentFileName    string `json:"document_file_name,omitempty"`
	DocumentBase64      string `json:"document_base64,omitempty"`

	Contact       Contact       `json:"contact"`
	ContactPerson ContactPerson `json:"contact_person,omitempty"`
	Lines         []InvoiceLine `json:"lines,omitempty"`
}

// Contact identifies the invoice debtor. Only non-empty fields are emitted.
type Contact struct {
	ContactCode  string `json:"contact_code,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
	City         string `json:"city,omitempty"`
	Zipcode      string `json:"zipcode,omitempty"`
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	CoCNumber    string `json:"coc_number,omitempty"`
	VATNumber    string `json:"vat_number,omitempty"`
	ContactType  string `json:"contact_type,omitempty"`
}

// ContactPerson is the optional attention line on the invoice.
type ContactPerson struct {
	FullName string `json:"full_name,omitempty"`
}

// InvoiceLine is one billable row. The amount fields are pointers so a
// deliberate zero survives serialization while an unset field is skipped.
type InvoiceLine struct {
	ProductQuantity *decimal.Decimal `json:"product_quantity,omitempty"`
	LineAmount      *decimal.Decimal `json:"line_amount,omitempty"`
	LineVATAmount   *decimal.Decimal `json:"line_vat_amount,omitempty"`
	Product         Product          `json:"product"`
}

// FillDerivedAmounts computes missing line amounts from quantity, sales
// price and VAT percentage. Explicit values, including explicit zeros, are
// never overwritten.
func (inv *SalesInvoice) FillDerivedAmounts() {
	for i := range inv.Lines {
		inv.Lines[i].fillDerivedAmounts()
	}
}

func (l *InvoiceLine) fillDerivedAmounts() {
	if l.LineAmount == nil && l.ProductQuantity != nil && l.Product.SalesPrice != nil {
		l.LineAmount = money.Ptr(money.LineAmount(*l.ProductQuantity, *l.Product.SalesPrice))
	}
	if l.LineVATAmount == nil && l.LineAmount != nil && l.Product.VATPercentage != nil {
		l.LineVATAmount = money.Ptr(money.VATAmount(*l.LineAmount, *l.Product.VATPercentage))
	}
}

// Product describes the article billed on a line. Description and Reference
// must never be serialized as zero-length strings; the builder substitutes a
// single space when they are empty.
type Product struct {
	Description   string           `json:"description,omitempty"`
	Reference     string           `json:"reference,omitempty"`
	SalesPrice    *decimal.Decimal `json:"sales_price,omitempty"`
	VATPercentage *decimal.Decimal `json:"vat_percentage,omitempty"`
	VATType       string           `json:"vat_type,omitempty"`
	GLAccountCode string           `json:"gl_account_code,omitempty"`
	Remarks       string           `json:"remarks,omitempty"`
}

// InvoiceBalance is the outcome of an outstanding-item lookup. A missing
// item and a fully settled one both report zero amounts; the service gives
// no way to tell them apart.
type InvoiceBalance struct {
	OpenAmount     float64 `json:"open_amount"`
	OriginalAmount float64 `json:"original_amount"`
}
