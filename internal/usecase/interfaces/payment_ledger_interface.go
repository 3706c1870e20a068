package interfaces

import (
	"context"
	"fmt"
)

// LedgerTransaction is the external ledger's loosely-shaped view of a payment.
//
// The Developer Portal response schema has drifted across versions, so every
// field the verifier cares about is optional and may live in more than one
// place: top-level scalars, or the first entry of a token-movements list. The
// raw decoded body is kept so the verifier can extract candidates itself.
type LedgerTransaction struct {
	Raw map[string]interface{}
}

// ErrLedgerQuery is returned when the ledger answered with a non-success HTTP
// outcome. It carries the upstream status for the handler's 502 body.
type ErrLedgerQuery struct {
	StatusCode int
}

func (e *ErrLedgerQuery) Error() string {
	return fmt.Sprintf("payment ledger query failed with status %d", e.StatusCode)
}

// IPaymentLedger abstracts the external, authoritative record of whether a
// wallet payment occurred (queried, not owned, by this service).
type IPaymentLedger interface {
	// GetTransaction looks up a transaction by id on behalf of the given app.
	// The lookup is a single best-effort round trip with no local caching.
	// reference is the client-claimed payment reference; the portal ignores it,
	// it exists for log correlation and for the mock gateway to echo.
	GetTransaction(ctx context.Context, appID, apiKey, transactionID, reference string) (LedgerTransaction, error)
}
