// Package salesxml renders a SalesInvoice into the XML subset accepted by
// the sales invoice import of the remote bookkeeping service. The service is
// tolerant about element position but strict about the namespace and tag
// names, so the output shape here is the compatibility surface.
package salesxml

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rezonia/yuki-connector/internal/model"
)

// Namespace of the SalesInvoices envelope.
const Namespace = "urn:xmlns:http://www.theyukicompany.com:salesinvoices"

// Build renders one invoice as a complete SalesInvoices document. The output
// is deterministic: identical input always yields byte-identical XML. The
// builder never fails; structural problems (a meaningless Contact, absurd
// dates) are for the remote service to judge.
func Build(inv *model.SalesInvoice, mode EscapeMode) string {
	w := &docWriter{mode: mode}

	w.open("SalesInvoices", ` xmlns="`+Namespace+`"`)
	w.open("SalesInvoice", "")

	w.field("Reference", inv.Reference)
	w.field("Subject", inv.Subject)
	w.field("PaymentMethod", inv.PaymentMethod)
	if w.value(inv.PaymentMethod) != "" {
		w.field("PaymentID", inv.PaymentID)
	}
	// Process marks the invoice as fully prepared; the import refuses to
	// book anything without it.
	w.literal("Process", "true")
	if inv.EmailToCustomer {
		w.literal("EmailToCustomer", "true")
	}
	w.field("SentToPeppol", inv.SentToPeppol)
	w.field("PurchaseOrderNumber", inv.PurchaseOrderNumber)
	w.field("Date", inv.Date)
	w.field("DueDate", inv.DueDate)
	w.field("Currency", inv.Currency)
	w.field("ProjectCode", inv.ProjectCode)
	w.field("Remarks", inv.Remarks)
	w.field("DocumentFileName", inv.DocumentFileName)
	w.field("DocumentBase64", inv.DocumentBase64)

	w.writeContact(&inv.Contact)

	if w.value(inv.ContactPerson.FullName) != "" {
		w.open("ContactPerson", "")
		w.field("FullName", inv.ContactPerson.FullName)
		w.close("ContactPerson")
	}

	if len(inv.Lines) > 0 {
		w.open("InvoiceLines", "")
		for i := range inv.Lines {
			w.writeLine(&inv.Lines[i])
		}
		w.close("InvoiceLines")
	}

	w.close("SalesInvoice")
	w.close("SalesInvoices")
	return w.String()
}

type docWriter struct {
	sb   strings.Builder
	mode EscapeMode
}

func (w *docWriter) String() string { return w.sb.String() }

// value normalizes a scalar according to the escape mode.
func (w *docWriter) value(raw string) string {
	if w.mode == PreEscaped {
		return raw
	}
	return Escape(raw)
}

func (w *docWriter) open(tag, attrs string) {
	w.sb.WriteString("<" + tag + attrs + ">")
}

func (w *docWriter) close(tag string) {
	w.sb.WriteString("</" + tag + ">")
}

// field emits <tag>value</tag> when the normalized value is non-empty.
func (w *docWriter) field(tag, raw string) {
	v := w.value(raw)
	if v == "" {
		return
	}
	w.literal(tag, v)
}

// literal emits the element with the text exactly as given.
func (w *docWriter) literal(tag, text string) {
	w.sb.WriteString("<" + tag + ">" + text + "</" + tag + ">")
}

// amount emits a numeric element when the value is set. A set zero is still
// emitted; only a nil pointer is skipped.
func (w *docWriter) amount(tag string, d *decimal.Decimal) {
	if d == nil {
		return
	}
	w.literal(tag, d.String())
}

// padded emits the element unconditionally, substituting a single space for
// an empty value. The import schema rejects zero-length strings here.
func (w *docWriter) padded(tag, raw string) {
	v := w.value(raw)
	if v == "" {
		v = " "
	}
	w.literal(tag, v)
}

func (w *docWriter) writeContact(c *model.Contact) {
	// The Contact element is always present, even when everything in it
	// is empty.
	w.open("Contact", "")
	w.field("ContactCode", c.ContactCode)
	w.field("FullName", c.FullName)
	w.field("CountryCode", c.CountryCode)
	w.field("City", c.City)
	w.field("Zipcode", c.Zipcode)
	w.field("AddressLine_1", c.AddressLine1)
	w.field("AddressLine_2", c.AddressLine2)
	w.field("EmailAddress", c.EmailAddress)
	w.field("CoCNumber", c.CoCNumber)
	w.field("VATNumber", c.VATNumber)
	w.field("ContactType", c.ContactType)
	w.close("Contact")
}

func (w *docWriter) writeLine(line *model.InvoiceLine) {
	w.open("InvoiceLine", "")
	w.amount("ProductQuantity", line.ProductQuantity)
	w.amount("LineAmount", line.LineAmount)
	w.amount("LineVATAmount", line.LineVATAmount)

	w.open("Product", "")
	w.padded("Description", line.Product.Description)
	w.padded("Reference", line.Product.Reference)
	w.amount("SalesPrice", line.Product.SalesPrice)
	w.amount("VATPercentage", line.Product.VATPercentage)
	w.field("VATType", line.Product.VATType)
	w.field("GLAccountCode", line.Product.GLAccountCode)
	w.field("Remarks", line.Product.Remarks)
	w.close("Product")

	w.close("InvoiceLine")
}
