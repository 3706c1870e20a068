package handlers

import (
	"errors"
	"log"
	"net/http"

	request "landmarker/internal/adapter/http/dto/request"
	response "landmarker/internal/adapter/http/dto/response"
	"landmarker/internal/usecase"
	"landmarker/pkg"

	"github.com/gin-gonic/gin"
)

// GenerationHandler handles paid travel-photo generation requests.
type GenerationHandler struct {
	usecase usecase.IGenerationUseCase
}

func NewGenerationHandler(uc usecase.IGenerationUseCase) *GenerationHandler {
	return &GenerationHandler{usecase: uc}
}

// GenerateImage consumes the payment reference and produces the edited photo.
func (h *GenerationHandler) GenerateImage(c *gin.Context) {
	var payload request.GenerateImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[generation][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.GenerateTravelPhoto(c.Request.Context(), payload.ToGenerationInput())
	if err != nil {
		log.Printf("[generation][handler] generate failed location=%s err=%v", payload.Location, err)
		appErr := mapGenerationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[generation][handler] generate success location=%s", payload.Location)
	c.JSON(http.StatusOK, response.FromGenerationResult(result))
}

func mapGenerationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidImageData):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "Invalid image data url", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageTooLarge):
		return pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Image too large", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedLocation):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_LOCATION", "Unsupported location", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReferenceFormat):
		return pkg.NewDomainErrorSimple("MALFORMED_REFERENCE", "Malformed payment reference", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentReference):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUIRED", "Missing payment reference", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrInvalidExpiredOrUsedReference):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUIRED", "Invalid, expired or already used payment reference", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrGenerationFailed):
		return pkg.NewDomainError("GENERATION_FAILED", "Image generation failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
