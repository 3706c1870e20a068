package generation

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"landmarker/internal/usecase/interfaces"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.5-flash-image-preview"
)

// GeminiEditor performs the travel-photo edit through the Gemini image API.
//
// The capability is opaque to the rest of the service: image in, edited image
// out, or a classified failure. Transient-vs-policy classification happens here
// so the retry decorator can stay provider-agnostic.
type GeminiEditor struct {
	baseURL    string
	model      string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IImageEditor = (*GeminiEditor)(nil)

func NewGeminiEditor() *GeminiEditor {
	if isEditorMockEnabled() {
		log.Printf("[generation][editor] mock mode enabled")
		return &GeminiEditor{mockMode: true}
	}

	return &GeminiEditor{
		baseURL: strings.TrimSuffix(getenvDefault("GEMINI_API_URL", defaultGeminiBaseURL), "/"),
		model:   getenvDefault("GEMINI_MODEL", defaultGeminiModel),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

func (e *GeminiEditor) Edit(ctx context.Context, image []byte, mimeType, prompt string) (interfaces.EditedImage, error) {
	if e.mockMode {
		log.Printf("[generation][editor] mock edit image_len=%d prompt_len=%d", len(image), len(prompt))
		return interfaces.EditedImage{Data: image, MimeType: mimeType}, nil
	}

	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		log.Printf("[generation][editor] missing GEMINI_API_KEY")
		return interfaces.EditedImage{}, fmt.Errorf("image editor not configured")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: prompt},
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return interfaces.EditedImage{}, fmt.Errorf("marshal request: %w", err)
	}

	u := fmt.Sprintf("%s/v1beta/models/%s:generateContent", e.baseURL, e.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return interfaces.EditedImage{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	log.Printf("[generation][editor] edit start image_len=%d", len(image))
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return interfaces.EditedImage{}, fmt.Errorf("%w: %v", interfaces.ErrEditorTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.EditedImage{}, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		log.Printf("[generation][editor] transient failure status=%d", resp.StatusCode)
		return interfaces.EditedImage{}, fmt.Errorf("%w: status %d", interfaces.ErrEditorTransient, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		log.Printf("[generation][editor] edit failed status=%d body_len=%d", resp.StatusCode, len(body))
		return interfaces.EditedImage{}, fmt.Errorf("image edit failed with status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return interfaces.EditedImage{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if parsed.PromptFeedback != nil && parsed.PromptFeedback.BlockReason != "" {
		log.Printf("[generation][editor] prompt blocked reason=%s", parsed.PromptFeedback.BlockReason)
		return interfaces.EditedImage{}, fmt.Errorf("%w: %s", interfaces.ErrEditorContentPolicy, parsed.PromptFeedback.BlockReason)
	}

	for _, cand := range parsed.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return interfaces.EditedImage{}, fmt.Errorf("decode edited image: %w", err)
			}
			out := interfaces.EditedImage{Data: data, MimeType: part.InlineData.MimeType}
			if out.MimeType == "" {
				out.MimeType = mimeType
			}
			log.Printf("[generation][editor] edit success image_len=%d", len(out.Data))
			return out, nil
		}
	}

	// A 200 with no image part is the provider declining the edit, typically
	// because it found no person in the source photo.
	log.Printf("[generation][editor] no image in response candidates=%d", len(parsed.Candidates))
	return interfaces.EditedImage{}, fmt.Errorf("%w: no image returned", interfaces.ErrEditorContentPolicy)
}

func isEditorMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("IMAGE_EDITOR_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
