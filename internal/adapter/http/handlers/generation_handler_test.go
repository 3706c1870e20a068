package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"landmarker/internal/adapter/http/handlers/mocks"
	"landmarker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newGenerationRouter(uc usecase.IGenerationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewGenerationHandler(uc)
	r.POST("/generate-image", h.GenerateImage)
	return r
}

func generateBody(reference string) string {
	return fmt.Sprintf(`{"imageDataUrl":"data:image/png;base64,aGk=","location":"eiffel-tower","paymentReference":%q,"userIdentifier":"traveler-1"}`, reference)
}

func TestGenerationHandler_GenerateImage(t *testing.T) {
	t.Run("missing required fields responds 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGenerationUseCase(ctrl)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate-image", strings.NewReader(`{"location":"eiffel-tower"}`))
		newGenerationRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns the inline and hosted image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGenerationUseCase(ctrl)
		uc.EXPECT().GenerateTravelPhoto(gomock.Any(), usecase.GenerationInput{
			ImageDataURL:     "data:image/png;base64,aGk=",
			Location:         "eiffel-tower",
			PaymentReference: testReference,
			UserIdentifier:   "traveler-1",
		}).Return(usecase.GenerationResult{
			ImageDataURL: "data:image/png;base64,ZWRpdGVk",
			ImageURL:     "https://img.example.com/postcards/" + testReference + ".png",
			ImageKey:     "postcards/" + testReference + ".png",
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate-image", strings.NewReader(generateBody(testReference)))
		newGenerationRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["success"] != true {
			t.Fatalf("expected success=true, got %v", body["success"])
		}
		if body["imageDataUrl"] != "data:image/png;base64,ZWRpdGVk" {
			t.Fatalf("unexpected imageDataUrl: %v", body["imageDataUrl"])
		}
		if body["imageKey"] != "postcards/"+testReference+".png" {
			t.Fatalf("unexpected imageKey: %v", body["imageKey"])
		}
	})

	t.Run("inline-only result omits the hosted fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGenerationUseCase(ctrl)
		uc.EXPECT().GenerateTravelPhoto(gomock.Any(), gomock.Any()).
			Return(usecase.GenerationResult{ImageDataURL: "data:image/png;base64,ZWRpdGVk"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate-image", strings.NewReader(generateBody(testReference)))
		newGenerationRouter(uc).ServeHTTP(w, req)

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if _, ok := body["imageUrl"]; ok {
			t.Fatalf("imageUrl must be omitted when no hosted copy exists")
		}
		if _, ok := body["imageKey"]; ok {
			t.Fatalf("imageKey must be omitted when no hosted copy exists")
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name        string
			err         error
			wantStatus  int
			wantMessage string
		}{
			{"invalid image", usecase.ErrInvalidImageData, http.StatusBadRequest, "Invalid image data url"},
			{"oversized image", usecase.ErrImageTooLarge, http.StatusBadRequest, "Image too large"},
			{"unsupported location", usecase.ErrUnsupportedLocation, http.StatusBadRequest, "Unsupported location"},
			{"malformed reference", usecase.ErrInvalidReferenceFormat, http.StatusBadRequest, "Malformed payment reference"},
			{"missing reference", usecase.ErrMissingPaymentReference, http.StatusPaymentRequired, "Missing payment reference"},
			{"spent reference", usecase.ErrInvalidExpiredOrUsedReference, http.StatusPaymentRequired, "Invalid, expired or already used payment reference"},
			{"edit failure", fmt.Errorf("%w: model unavailable", usecase.ErrGenerationFailed), http.StatusInternalServerError, "Image generation failed"},
			{"unexpected error", errors.New("boom"), http.StatusInternalServerError, "An internal error occurred"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIGenerationUseCase(ctrl)
				uc.EXPECT().GenerateTravelPhoto(gomock.Any(), gomock.Any()).Return(usecase.GenerationResult{}, tc.err)

				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/generate-image", strings.NewReader(generateBody(testReference)))
				newGenerationRouter(uc).ServeHTTP(w, req)

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
			})
		}
	})
}
