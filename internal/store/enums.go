package store

import "context"

// Enumeration names resolvable through the service layer.
const (
	EnumPaymentMethod = "payment_method"
	EnumPaymentStatus = "payment_status"
)

// EnumStore resolves the legal value set of a schema-defined enumeration.
//
// Implementations query live schema metadata on every call: the result is a
// point-in-time snapshot, never a cached constant. A migration that changes
// the legal values takes effect on the next call without a redeployment.
// Validators depend on this narrow port, not on the concrete store, so tests
// substitute a static in-memory map.
type EnumStore interface {
	// ResolveEnumeration returns the ordered legal values of the named
	// enumeration type.
	// Returns ErrEnumTypeNotFound if the schema does not define the type.
	ResolveEnumeration(ctx context.Context, name string) ([]string, error)
}
