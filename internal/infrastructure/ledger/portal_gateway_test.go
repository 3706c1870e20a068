package ledger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"landmarker/internal/usecase/interfaces"
)

func TestPortalGateway_GetTransaction(t *testing.T) {
	t.Run("queries the portal with auth and cache headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v2/minikit/transaction/tx-1" {
				t.Fatalf("unexpected path: %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("app_id"); got != "app_test_1" {
				t.Fatalf("unexpected app_id: %q", got)
			}
			if got := r.URL.Query().Get("type"); got != "payment" {
				t.Fatalf("unexpected type: %q", got)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer api-key-1" {
				t.Fatalf("unexpected authorization header: %q", got)
			}
			if got := r.Header.Get("Cache-Control"); got != "no-store" {
				t.Fatalf("unexpected cache-control header: %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"transactionId":"tx-1","reference":"abc","transaction_status":"mined"}`))
		}))
		defer srv.Close()
		t.Setenv("PORTAL_API_URL", srv.URL)

		tx, err := NewPortalGateway().GetTransaction(context.Background(), "app_test_1", "api-key-1", "tx-1", "abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Raw["transaction_status"] != "mined" {
			t.Fatalf("unexpected payload: %v", tx.Raw)
		}
		if tx.Raw["reference"] != "abc" {
			t.Fatalf("unexpected reference: %v", tx.Raw["reference"])
		}
	})

	t.Run("non-2xx surfaces the upstream status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer srv.Close()
		t.Setenv("PORTAL_API_URL", srv.URL)

		_, err := NewPortalGateway().GetTransaction(context.Background(), "app_test_1", "bad-key", "tx-1", "abc")
		var ledgerErr *interfaces.ErrLedgerQuery
		if !errors.As(err, &ledgerErr) {
			t.Fatalf("expected ErrLedgerQuery, got %v", err)
		}
		if ledgerErr.StatusCode != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d", ledgerErr.StatusCode)
		}
	})

	t.Run("invalid json is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}))
		defer srv.Close()
		t.Setenv("PORTAL_API_URL", srv.URL)

		if _, err := NewPortalGateway().GetTransaction(context.Background(), "app_test_1", "api-key-1", "tx-1", "abc"); err == nil {
			t.Fatalf("expected an unmarshal error")
		}
	})

	t.Run("mock mode echoes a mined transaction", func(t *testing.T) {
		t.Setenv("PORTAL_MOCK", "true")

		tx, err := NewPortalGateway().GetTransaction(context.Background(), "app_test_1", "api-key-1", "tx-1", "abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Raw["reference"] != "abc" || tx.Raw["transaction_status"] != "mined" {
			t.Fatalf("unexpected mock payload: %v", tx.Raw)
		}
	})
}
