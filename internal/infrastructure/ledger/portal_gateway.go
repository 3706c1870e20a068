package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"landmarker/internal/usecase/interfaces"
)

const defaultPortalBaseURL = "https://developer.worldcoin.org"

// PortalGateway queries the Worldcoin Developer Portal for minikit payment
// transactions. The portal is the authoritative ledger of whether a wallet
// payment occurred; this service only reads it.
type PortalGateway struct {
	baseURL    string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IPaymentLedger = (*PortalGateway)(nil)

func NewPortalGateway() *PortalGateway {
	if isPortalMockEnabled() {
		log.Printf("[ledger][gateway] mock mode enabled")
		return &PortalGateway{mockMode: true}
	}

	baseURL := strings.TrimSuffix(getenvDefault("PORTAL_API_URL", defaultPortalBaseURL), "/")
	return &PortalGateway{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (g *PortalGateway) GetTransaction(ctx context.Context, appID, apiKey, transactionID, reference string) (interfaces.LedgerTransaction, error) {
	if g.mockMode {
		log.Printf("[ledger][gateway] mock lookup transaction_id=%s reference=%s", transactionID, reference)
		return interfaces.LedgerTransaction{Raw: map[string]interface{}{
			"transactionId":      transactionID,
			"reference":          reference,
			"transaction_status": "mined",
		}}, nil
	}

	u := fmt.Sprintf("%s/api/v2/minikit/transaction/%s?app_id=%s&type=payment",
		g.baseURL, url.PathEscape(transactionID), url.QueryEscape(appID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return interfaces.LedgerTransaction{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	// The lookup must reflect the portal's current view; never serve a cached answer.
	req.Header.Set("Cache-Control", "no-store")

	log.Printf("[ledger][gateway] lookup start transaction_id=%s reference=%s", transactionID, reference)
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return interfaces.LedgerTransaction{}, fmt.Errorf("portal request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.LedgerTransaction{}, fmt.Errorf("read portal response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[ledger][gateway] lookup failed transaction_id=%s status=%d body_len=%d", transactionID, resp.StatusCode, len(body))
		return interfaces.LedgerTransaction{}, &interfaces.ErrLedgerQuery{StatusCode: resp.StatusCode}
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return interfaces.LedgerTransaction{}, fmt.Errorf("unmarshal portal response: %w", err)
	}
	log.Printf("[ledger][gateway] lookup success transaction_id=%s", transactionID)

	return interfaces.LedgerTransaction{Raw: raw}, nil
}

func isPortalMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PORTAL_MOCK")))
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
