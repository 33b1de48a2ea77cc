package server

import "github.com/rezonia/yuki-connector/internal/model"

// SubmitRequest is the body of the invoice submission endpoint.
type SubmitRequest struct {
	Invoice model.SalesInvoice `json:"invoice"`
	// PreEscaped marks every scalar in the invoice as already XML-escaped;
	// the caller then carries full responsibility for content safety.
	PreEscaped bool `json:"pre_escaped,omitempty"`
}

// SubmitResponse is returned after a successful submission
type SubmitResponse struct {
	Status    string `json:"status"`
	Reference string `json:"reference,omitempty"`
}

// BalanceResponse is the response of the balance endpoint
type BalanceResponse struct {
	Reference      string  `json:"reference"`
	OpenAmount     float64 `json:"open_amount"`
	OriginalAmount float64 `json:"original_amount"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error    string `json:"error"`
	Details  string `json:"details,omitempty"`
	Response string `json:"response,omitempty"`
}
