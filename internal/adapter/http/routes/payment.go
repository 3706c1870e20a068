package routes

import (
	"landmarker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIssueReference = "/issue-payment-reference"
	PathConfirmPayment = "/confirm-payment"
	PathGenerateImage  = "/generate-image"
)

func addPaymentRoutes(rg *gin.RouterGroup, referenceHandler *handlers.PaymentReferenceHandler, generationHandler *handlers.GenerationHandler) {
	// Endpoint contract consumed by the mini-app client.
	rg.POST(PathIssueReference, referenceHandler.IssueReference)
	rg.POST(PathConfirmPayment, referenceHandler.ConfirmPayment)
	rg.POST(PathGenerateImage, generationHandler.GenerateImage)
}
