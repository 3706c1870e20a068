package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "landmarker/internal/adapter/http/dto/request"
	response "landmarker/internal/adapter/http/dto/response"
	"landmarker/internal/domain/entities"
	"landmarker/internal/usecase"
	"landmarker/internal/usecase/interfaces"
	"landmarker/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentReferenceCookie is the redundant client-side copy of the issued
// reference. It is a weak identity fallback for confirmation when in-process
// store state was lost, never a source of truth for used/expiry state.
const PaymentReferenceCookie = "pay_ref"

// PaymentReferenceHandler handles issuing and confirming payment references.
type PaymentReferenceHandler struct {
	usecase usecase.IPaymentReferenceUseCase
}

func NewPaymentReferenceHandler(uc usecase.IPaymentReferenceUseCase) *PaymentReferenceHandler {
	return &PaymentReferenceHandler{usecase: uc}
}

// IssueReference mints a one-time payment reference and mirrors it into the
// pay_ref cookie. Cookie trouble never fails the request; correlation then
// degrades to in-memory only.
func (h *PaymentReferenceHandler) IssueReference(c *gin.Context) {
	id, err := h.usecase.Issue(c.Request.Context())
	if err != nil {
		log.Printf("[reference][handler] issue failed err=%v", err)
		appErr := pkg.NewDomainError("REFERENCE_ISSUE_FAILED", "Could not issue a payment reference", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	setReferenceCookie(c, id)
	log.Printf("[reference][handler] issue success reference=%s", id)
	c.JSON(http.StatusOK, response.IssueReferenceResponse{ID: id})
}

// ConfirmPayment cross-checks a client-reported payment against the ledger.
// A verified payment clears the cookie but does not consume the reference;
// consumption belongs exclusively to the generation endpoint.
func (h *PaymentReferenceHandler) ConfirmPayment(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[reference][handler] invalid confirm payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cookieReference, _ := c.Cookie(PaymentReferenceCookie)

	err := h.usecase.Confirm(c.Request.Context(), payload.ToConfirmationPayload(), cookieReference)
	if err != nil {
		log.Printf("[reference][handler] confirm failed reference=%s err=%v", payload.Payload.Reference, err)
		appErr := mapConfirmError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	clearReferenceCookie(c)
	log.Printf("[reference][handler] confirm success reference=%s", payload.Payload.Reference)
	c.JSON(http.StatusOK, response.ConfirmPaymentResponse{Success: true})
}

func mapConfirmError(err error) *pkg.AppError {
	var verr *usecase.VerificationError
	var ledgerErr *interfaces.ErrLedgerQuery

	switch {
	case errors.Is(err, usecase.ErrUnknownOrExpiredReference):
		return pkg.NewDomainErrorSimple("UNKNOWN_REFERENCE", "Unknown or expired payment reference", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing transaction id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServerConfiguration):
		return pkg.NewDomainError("SERVER_MISCONFIGURED", "Payment verification is unavailable", err, http.StatusInternalServerError)
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_VERIFIED", verr.Reason(), http.StatusBadRequest)
	case errors.As(err, &ledgerErr):
		return pkg.NewDomainError("LEDGER_QUERY_FAILED", ledgerErr.Error(), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func setReferenceCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(PaymentReferenceCookie, id, int(entities.ReferenceTTL.Seconds()), "/", "", cookieSecure(), true)
}

func clearReferenceCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(PaymentReferenceCookie, "", -1, "/", "", cookieSecure(), true)
}

func cookieSecure() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv("APP_ENV")), "production")
}
