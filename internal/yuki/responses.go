package yuki

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/rezonia/yuki-connector/internal/model"
	"github.com/rezonia/yuki-connector/internal/soap"
)

// processReply is the embedded result document of ProcessSalesInvoices.
type processReply struct {
	XMLName        xml.Name
	TotalSucceeded int            `xml:"TotalSucceeded"`
	TotalFailed    int            `xml:"TotalFailed"`
	Invoices       []invoiceReply `xml:"Invoice"`
}

type invoiceReply struct {
	Reference string `xml:"Reference"`
	Succeeded bool   `xml:"Succeeded"`
	Message   string `xml:"Message"`
}

// interpretProcessResult reads the submission outcome. Zero booked invoices
// is a rejection; the service message for the first invoice entry and the
// complete raw result travel with the error.
func interpretProcessResult(res *soap.Result) error {
	raw := res.PayloadXML()
	if strings.TrimSpace(raw) == "" {
		return model.NewRemoteCallError(string(res.Operation()), "empty submission result", nil)
	}

	var reply processReply
	if err := xml.Unmarshal([]byte(raw), &reply); err != nil {
		return model.NewRemoteCallError(string(res.Operation()), "unparsable submission result: "+err.Error(), err)
	}

	if reply.TotalSucceeded == 0 {
		message := "invoice was not processed"
		for _, inv := range reply.Invoices {
			if inv.Message != "" {
				message = inv.Message
				break
			}
		}
		return model.NewInvoiceRejectedError(message, raw)
	}
	return nil
}

// interpretOutstandingItem extracts the two balance amounts. Missing or
// unparsable amounts default to zero rather than failing the lookup.
func interpretOutstandingItem(res *soap.Result) *model.InvoiceBalance {
	return &model.InvoiceBalance{
		OpenAmount:     elementFloat(res, "OpenAmount"),
		OriginalAmount: elementFloat(res, "OriginalAmount"),
	}
}

func elementFloat(res *soap.Result, tag string) float64 {
	el := res.First(tag)
	if el == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(el.Text()), 64)
	if err != nil {
		return 0
	}
	return v
}

// firstAdministrationID reads the ID attribute of the first administration
// in an Administrations listing.
func firstAdministrationID(res *soap.Result) (string, error) {
	admin := res.First("Administration")
	if admin == nil {
		return "", model.NewAdministrationAccessError("no administration listed for this access key", nil)
	}
	id := strings.TrimSpace(admin.SelectAttrValue("ID", ""))
	if id == "" {
		return "", model.NewAdministrationAccessError("administration entry carries no ID attribute", nil)
	}
	return id, nil
}
