package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"landmarker/internal/domain/entities"
	"landmarker/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnknownOrExpiredReference = errors.New("unknown or expired payment reference")
	ErrMissingTransactionID      = errors.New("missing transaction id")
	ErrServerConfiguration       = errors.New("payment verification is not configured")
)

// VerificationError enumerates every sub-check a confirmation failed, for
// observability. Reason is the comma-joined tag list surfaced to the client.
type VerificationError struct {
	Tags []string
}

func (e *VerificationError) Error() string {
	return "payment verification failed: " + e.Reason()
}

func (e *VerificationError) Reason() string {
	return strings.Join(e.Tags, ",")
}

// ConfirmationPayload is the client-reported payment success notification.
type ConfirmationPayload struct {
	Reference     string
	TransactionID string
	Status        string
}

// IPaymentReferenceUseCase owns the payment-reference lifecycle up to (but not
// including) consumption.
//
// Issue mints a one-time reference correlating a wallet payment with this
// server's expectation. Confirm cross-checks a client-claimed payment against
// the external ledger; it deliberately never consumes the reference, so a
// confirmed-but-not-yet-generated payment can still be redeemed later even if
// the client dropped the confirmation response.
type IPaymentReferenceUseCase interface {
	Issue(ctx context.Context) (string, error)
	Confirm(ctx context.Context, payload ConfirmationPayload, cookieReference string) error
}

type PaymentReferenceUseCase struct {
	store  interfaces.IReferenceStore
	ledger interfaces.IPaymentLedger
}

var _ IPaymentReferenceUseCase = (*PaymentReferenceUseCase)(nil)

func NewPaymentReferenceUseCase(store interfaces.IReferenceStore, ledger interfaces.IPaymentLedger) *PaymentReferenceUseCase {
	return &PaymentReferenceUseCase{store: store, ledger: ledger}
}

// Issue sweeps expired references (keeps the store bounded), then mints a fresh
// 128-bit random id rendered as 32 lowercase hex characters and records it.
func (u *PaymentReferenceUseCase) Issue(ctx context.Context) (string, error) {
	if err := u.store.SweepExpired(ctx); err != nil {
		log.Printf("[reference][usecase] sweep failed err=%v", err)
	}

	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := u.store.Add(ctx, id); err != nil {
		log.Printf("[reference][usecase] store add failed err=%v", err)
		return "", err
	}
	log.Printf("[reference][usecase] issued reference=%s", id)
	return id, nil
}

func (u *PaymentReferenceUseCase) Confirm(ctx context.Context, payload ConfirmationPayload, cookieReference string) error {
	reference := strings.TrimSpace(payload.Reference)
	log.Printf("[reference][usecase] confirm start reference=%s transaction_id=%s", reference, payload.TransactionID)

	if err := u.store.SweepExpired(ctx); err != nil {
		log.Printf("[reference][usecase] sweep failed err=%v", err)
	}

	// Admission is an OR of two independent checks: the in-process store and the
	// redundant cookie. The cookie is identity-only continuity for when store
	// state was lost between issuance and confirmation; it carries no used or
	// expiry state.
	admitted := false
	if reference != "" {
		known, err := u.store.Has(ctx, reference)
		if err != nil {
			log.Printf("[reference][usecase] store lookup failed reference=%s err=%v", reference, err)
		}
		admitted = known || reference == cookieReference
	}
	if !admitted {
		log.Printf("[reference][usecase] confirm rejected, reference not admitted reference=%s", reference)
		return ErrUnknownOrExpiredReference
	}

	if strings.TrimSpace(payload.TransactionID) == "" {
		return ErrMissingTransactionID
	}

	expectedRecipient := strings.TrimSpace(os.Getenv("PAYMENT_RECIPIENT_ADDRESS"))
	appID := strings.TrimSpace(os.Getenv("PORTAL_APP_ID"))
	apiKey := strings.TrimSpace(os.Getenv("PORTAL_API_KEY"))
	if expectedRecipient == "" || appID == "" || apiKey == "" {
		// Never tell the client which variable is missing; full detail stays in logs.
		log.Printf("[reference][usecase] missing configuration recipient_set=%t app_id_set=%t api_key_set=%t",
			expectedRecipient != "", appID != "", apiKey != "")
		return ErrServerConfiguration
	}

	tx, err := u.ledger.GetTransaction(ctx, appID, apiKey, payload.TransactionID, reference)
	if err != nil {
		log.Printf("[reference][usecase] ledger query failed transaction_id=%s err=%v", payload.TransactionID, err)
		return err
	}

	result := verifyTransaction(tx.Raw, reference, expectedRecipient)
	if len(result.Tags) > 0 {
		log.Printf("[reference][usecase] confirm failed reference=%s reasons=%s", reference, result.Reason())
		return result
	}

	log.Printf("[reference][usecase] confirm success reference=%s transaction_id=%s", reference, payload.TransactionID)
	return nil
}

// verifyTransaction runs the five sub-checks against the ledger's loosely
// shaped transaction view. Returns a VerificationError whose Tags list every
// failed check; an empty tag list means the payment verified.
//
// Field extraction is deliberately tolerant: a candidate is taken from the
// first matching top-level alias, then from the first entry of the token
// movements list. Checks on fields the ledger omits entirely pass vacuously
// (an absent field cannot contradict the expectation) — except the reference
// itself, which must match exactly.
func verifyTransaction(raw map[string]interface{}, reference, expectedRecipient string) *VerificationError {
	ledgerReference := stringField(raw, "reference", "reference_id", "referenceId")
	status := stringField(raw, "transaction_status", "transactionStatus", "status")
	recipient := stringField(raw, "recipient", "recipient_address", "recipientAddress", "to")

	symbol := stringField(raw, "token", "token_symbol", "tokenSymbol", "symbol")
	amount := stringField(raw, "token_amount", "tokenAmount", "amount")
	if symbol == "" && amount == "" {
		if movement := firstTokenMovement(raw); movement != nil {
			symbol = stringField(movement, "symbol", "token_symbol", "tokenSymbol", "token")
			amount = stringField(movement, "token_amount", "tokenAmount", "amount")
		}
	}

	referenceOk := ledgerReference == reference
	statusOk := status == "" || !strings.EqualFold(status, entities.TransactionStatusFailed)
	recipientOk := recipient == "" || strings.EqualFold(recipient, expectedRecipient)
	tokenOk := symbol == "" || acceptedSymbol(symbol)
	amountOk := amount == "" || acceptedAmount(symbol, amount)

	verr := &VerificationError{}
	if !referenceOk {
		verr.Tags = append(verr.Tags, entities.FailureTagReference)
	}
	if !statusOk {
		verr.Tags = append(verr.Tags, entities.FailureTagStatus)
	}
	if !recipientOk {
		verr.Tags = append(verr.Tags, entities.FailureTagRecipient)
	}
	if !tokenOk {
		verr.Tags = append(verr.Tags, entities.FailureTagToken)
	}
	if !amountOk {
		verr.Tags = append(verr.Tags, entities.FailureTagAmount)
	}
	return verr
}

func acceptedSymbol(symbol string) bool {
	for _, term := range entities.AcceptedPaymentTerms {
		if term.TokenSymbol == symbol {
			return true
		}
	}
	return false
}

// acceptedAmount compares the observed amount against the allow-list as an
// exact decimal string, never numerically. When the ledger also reported a
// symbol, only terms for that symbol count.
func acceptedAmount(symbol, amount string) bool {
	for _, term := range entities.AcceptedPaymentTerms {
		if symbol != "" && term.TokenSymbol != symbol {
			continue
		}
		if term.TokenAmount == amount {
			return true
		}
	}
	return false
}

func stringField(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func firstTokenMovement(m map[string]interface{}) map[string]interface{} {
	for _, key := range []string{"tokens", "token_movements", "tokenMovements"} {
		v, ok := m[key]
		if !ok {
			continue
		}
		list, ok := v.([]interface{})
		if !ok || len(list) == 0 {
			continue
		}
		if first, ok := list[0].(map[string]interface{}); ok {
			return first
		}
	}
	return nil
}
