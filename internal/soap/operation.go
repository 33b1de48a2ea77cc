package soap

// Operation is one of the named remote operations the connector supports.
// The set is closed on purpose: every operation maps to a known service
// endpoint and a known response shape.
type Operation string

const (
	OpAuthenticate          Operation = "Authenticate"
	OpAdministrations       Operation = "Administrations"
	OpProcessSalesInvoices  Operation = "ProcessSalesInvoices"
	OpCheckOutstandingItem  Operation = "CheckOutstandingItem"
	OpNetRevenue            Operation = "NetRevenue"
	OpGLAccountBalance      Operation = "GLAccountBalance"
	OpGLAccountTransactions Operation = "GLAccountTransactions"
	OpGetGLAccountScheme    Operation = "GetGLAccountScheme"
)

// Service is a variant of the remote web service, each with its own endpoint.
type Service string

const (
	ServiceSales          Service = "sales"
	ServiceAccounting     Service = "accounting"
	ServiceAccountingInfo Service = "accountinginfo"
)

// DefaultHost is the production host of the remote service.
const DefaultHost = "https://api.yukiworks.nl"

var serviceDocuments = map[Service]string{
	ServiceSales:          "Sales.asmx",
	ServiceAccounting:     "Accounting.asmx",
	ServiceAccountingInfo: "AccountingInfo.asmx",
}

// Service returns the service variant that hosts the operation. Unknown
// operations fall back to the sales service, the default variant.
func (op Operation) Service() Service {
	switch op {
	case OpNetRevenue, OpGLAccountBalance, OpGLAccountTransactions:
		return ServiceAccounting
	case OpGetGLAccountScheme:
		return ServiceAccountingInfo
	default:
		return ServiceSales
	}
}

// endpoint resolves the full URL for the operation against the given host.
func (op Operation) endpoint(host string) string {
	return host + "/ws/" + serviceDocuments[op.Service()]
}
