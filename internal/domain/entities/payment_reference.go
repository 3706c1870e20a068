package entities

import "time"

// ReferenceTTL is how long an issued payment reference stays redeemable.
const ReferenceTTL = 10 * time.Minute

// PaymentReference is a one-time correlation token binding a client-initiated
// wallet payment to a server-side expectation.
//
// Lifecycle:
//   - issued (Used=false) and handed to the client + mirrored into a cookie;
//   - read by the confirmation verifier (never mutated there);
//   - consumed exactly once by the generation gate (Used=true);
//   - evicted by the sweeper once older than ReferenceTTL.
type PaymentReference struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Used      bool      `json:"used"`
}

// Expired reports whether the reference is older than the TTL at the given time.
func (r PaymentReference) Expired(now time.Time) bool {
	return now.Sub(r.CreatedAt) > ReferenceTTL
}

// AcceptedPaymentTerm is one (token symbol, exact amount string) pair the service
// accepts as payment for a single generation.
//
// Amounts are compared as exact decimal strings, not numerically. The portal
// reports token amounts in base units and a formatting change upstream should
// break matching loudly instead of silently widening what we accept.
type AcceptedPaymentTerm struct {
	TokenSymbol string
	TokenAmount string
}

// AcceptedPaymentTerms is the allow-list of payments valid for one generation.
// Currently a single entry: 0.5 WLD in base units.
var AcceptedPaymentTerms = []AcceptedPaymentTerm{
	{TokenSymbol: "WLD", TokenAmount: "500000000000000000"},
}

// MatchesAcceptedTerm reports whether the observed (symbol, amount) pair matches
// any allow-listed term exactly.
func MatchesAcceptedTerm(symbol, amount string) bool {
	for _, term := range AcceptedPaymentTerms {
		if term.TokenSymbol == symbol && term.TokenAmount == amount {
			return true
		}
	}
	return false
}

// TransactionStatusFailed is the only portal transaction status that rejects a
// confirmation. Pending/mined/absent statuses are accepted optimistically.
const TransactionStatusFailed = "failed"

// Verification failure tags, comma-joined into the composite failure reason.
const (
	FailureTagReference = "invalid_reference"
	FailureTagStatus    = "invalid_status"
	FailureTagRecipient = "invalid_recipient"
	FailureTagToken     = "invalid_token"
	FailureTagAmount    = "invalid_amount"
)
