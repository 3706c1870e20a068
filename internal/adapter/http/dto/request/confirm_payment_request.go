package request

import (
	"strings"

	"landmarker/internal/usecase"
)

// ConfirmPaymentPayload is the wallet client's payment success notification,
// produced by the mini-app SDK after the user approved the transfer.
type ConfirmPaymentPayload struct {
	Reference     string `json:"reference"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

// ConfirmPaymentRequest wraps the SDK payload the way the client sends it.
type ConfirmPaymentRequest struct {
	Payload ConfirmPaymentPayload `json:"payload" binding:"required"`
}

func (r ConfirmPaymentRequest) ToConfirmationPayload() usecase.ConfirmationPayload {
	return usecase.ConfirmationPayload{
		Reference:     strings.TrimSpace(r.Payload.Reference),
		TransactionID: strings.TrimSpace(r.Payload.TransactionID),
		Status:        strings.TrimSpace(r.Payload.Status),
	}
}
