package response

// IssueReferenceResponse returns the freshly minted payment reference id.
type IssueReferenceResponse struct {
	ID string `json:"id"`
}

// ConfirmPaymentResponse acknowledges a verified payment.
type ConfirmPaymentResponse struct {
	Success bool `json:"success"`
}
