package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"landmarker/internal/adapter/http/handlers/mocks"
	"landmarker/internal/usecase"
	"landmarker/internal/usecase/interfaces"
	"landmarker/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testReference = "0123456789abcdef0123456789abcdef"

func newReferenceRouter(uc usecase.IPaymentReferenceUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPaymentReferenceHandler(uc)
	r.POST("/issue-payment-reference", h.IssueReference)
	r.POST("/confirm-payment", h.ConfirmPayment)
	return r
}

func decodeHTTPError(t *testing.T, body string) pkg.HTTPError {
	t.Helper()
	var out pkg.HTTPError
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("body is not an error envelope: %v (%s)", err, body)
	}
	return out
}

func findCookie(res *http.Response, name string) *http.Cookie {
	for _, ck := range res.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestPaymentReferenceHandler_IssueReference(t *testing.T) {
	t.Run("success sets the reference cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentReferenceUseCase(ctrl)
		uc.EXPECT().Issue(gomock.Any()).Return(testReference, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/issue-payment-reference", nil)
		newReferenceRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != testReference {
			t.Fatalf("expected id=%s, got %q", testReference, body["id"])
		}

		ck := findCookie(w.Result(), PaymentReferenceCookie)
		if ck == nil {
			t.Fatalf("expected %s cookie to be set", PaymentReferenceCookie)
		}
		if ck.Value != testReference {
			t.Fatalf("cookie must carry the issued id, got %q", ck.Value)
		}
		if !ck.HttpOnly || ck.Path != "/" || ck.MaxAge != 600 {
			t.Fatalf("unexpected cookie attributes: httponly=%t path=%q maxage=%d", ck.HttpOnly, ck.Path, ck.MaxAge)
		}
		if ck.Secure {
			t.Fatalf("cookie must not be Secure outside production")
		}
	})

	t.Run("production enables the Secure attribute", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentReferenceUseCase(ctrl)
		uc.EXPECT().Issue(gomock.Any()).Return(testReference, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/issue-payment-reference", nil)
		newReferenceRouter(uc).ServeHTTP(w, req)

		ck := findCookie(w.Result(), PaymentReferenceCookie)
		if ck == nil || !ck.Secure {
			t.Fatalf("expected a Secure cookie in production")
		}
	})

	t.Run("issue failure responds 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentReferenceUseCase(ctrl)
		uc.EXPECT().Issue(gomock.Any()).Return("", errors.New("store down"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/issue-payment-reference", nil)
		newReferenceRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if out := decodeHTTPError(t, w.Body.String()); out.Success {
			t.Fatalf("error envelope must report success=false")
		}
		if findCookie(w.Result(), PaymentReferenceCookie) != nil {
			t.Fatalf("no cookie should be set on failure")
		}
	})
}

func TestPaymentReferenceHandler_ConfirmPayment(t *testing.T) {
	validBody := `{"payload":{"reference":"` + testReference + `","transaction_id":"tx-1","status":"submitted"}}`

	t.Run("malformed body responds 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentReferenceUseCase(ctrl)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/confirm-payment", strings.NewReader("{not json"))
		newReferenceRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payload and cookie are forwarded to the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentReferenceUseCase(ctrl)
		uc.EXPECT().Confirm(gomock.Any(), gomock.Any(), "cookie-ref").DoAndReturn(
			func(_ context.Context, payload usecase.ConfirmationPayload, _ string) error {
				if payload.Reference != testReference || payload.TransactionID != "tx-1" {
					t.Fatalf("unexpected payload: %+v", payload)
				}
				return nil
			},
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/confirm-payment", strings.NewReader(validBody))
		req.AddCookie(&http.Cookie{Name: PaymentReferenceCookie, Value: "cookie-ref"})
		newReferenceRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if w.Body.String() != `{"success":true}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		ck := findCookie(w.Result(), PaymentReferenceCookie)
		if ck == nil || ck.Value != "" || ck.MaxAge != -1 {
			t.Fatalf("expected the cookie to be cleared on success, got %+v", ck)
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name        string
			err         error
			wantStatus  int
			wantMessage string
		}{
			{"unknown reference", usecase.ErrUnknownOrExpiredReference, http.StatusBadRequest, "Unknown or expired payment reference"},
			{"missing transaction id", usecase.ErrMissingTransactionID, http.StatusBadRequest, "Missing transaction id"},
			{"server misconfigured", usecase.ErrServerConfiguration, http.StatusInternalServerError, "Payment verification is unavailable"},
			{"verification tags surface verbatim", &usecase.VerificationError{Tags: []string{"invalid_status"}}, http.StatusBadRequest, "invalid_status"},
			{"multiple verification tags", &usecase.VerificationError{Tags: []string{"invalid_recipient", "invalid_amount"}}, http.StatusBadRequest, "invalid_recipient,invalid_amount"},
			{"ledger failure is a bad gateway", &interfaces.ErrLedgerQuery{StatusCode: 500}, http.StatusBadGateway, "payment ledger query failed with status 500"},
			{"unexpected error", errors.New("boom"), http.StatusInternalServerError, "An internal error occurred"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIPaymentReferenceUseCase(ctrl)
				uc.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.err)

				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/confirm-payment", strings.NewReader(validBody))
				newReferenceRouter(uc).ServeHTTP(w, req)

				if w.Code != tc.wantStatus {
					t.Fatalf("expected %d, got %d (%s)", tc.wantStatus, w.Code, w.Body.String())
				}
				out := decodeHTTPError(t, w.Body.String())
				if out.Success {
					t.Fatalf("error envelope must report success=false")
				}
				if out.Error != tc.wantMessage {
					t.Fatalf("expected error %q, got %q", tc.wantMessage, out.Error)
				}
				if findCookie(w.Result(), PaymentReferenceCookie) != nil {
					t.Fatalf("cookie must survive a failed confirmation")
				}
			})
		}
	})
}
