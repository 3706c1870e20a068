package interfaces

import "context"

// IReferenceStore holds short-lived payment-reference records.
//
// Implementations own the records for the process lifetime (in-memory) or
// delegate durability to a backing table (DynamoDB). Either way, mutations to a
// single record must be atomic with respect to concurrent requests for the same
// id: of two concurrent TryConsume calls for one id, exactly one may succeed.
type IReferenceStore interface {
	// Add inserts a fresh record with used=false and created_at=now.
	Add(ctx context.Context, id string) error

	// Has reports whether a record exists, is not expired and is unused.
	// Finding an expired record lazily deletes it before returning false.
	Has(ctx context.Context, id string) (bool, error)

	// MarkUsed sets used=true. A missing record is a no-op, not an error;
	// callers must not rely on MarkUsed to signal absence.
	MarkUsed(ctx context.Context, id string) error

	// TryConsume atomically checks exists+unexpired+unused and marks the record
	// used, returning whether this call won the consume.
	TryConsume(ctx context.Context, id string) (bool, error)

	// SweepExpired removes every record older than the TTL. Idempotent.
	SweepExpired(ctx context.Context) error
}
