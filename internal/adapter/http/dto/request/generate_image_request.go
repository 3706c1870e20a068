package request

import (
	"strings"

	"landmarker/internal/usecase"
)

// GenerateImageRequest is one paid travel-photo request. Field names follow
// the mini-app client's camelCase payload.
type GenerateImageRequest struct {
	ImageDataURL     string `json:"imageDataUrl" binding:"required"`
	Location         string `json:"location" binding:"required"`
	PaymentReference string `json:"paymentReference"`
	UserIdentifier   string `json:"userIdentifier"`
}

func (r GenerateImageRequest) ToGenerationInput() usecase.GenerationInput {
	return usecase.GenerationInput{
		ImageDataURL:     strings.TrimSpace(r.ImageDataURL),
		Location:         strings.TrimSpace(r.Location),
		PaymentReference: strings.TrimSpace(r.PaymentReference),
		UserIdentifier:   strings.TrimSpace(r.UserIdentifier),
	}
}
