package catalog

import "github.com/srkasse/backend/internal/domain/shared"

// Catalog domain errors
var (
	// ErrInvalidCode is returned when a code component is absent from the code map registry
	ErrInvalidCode = shared.NewDomainError("INVALID_CODE", "Code is not present in the code map registry")
	// ErrSequenceConflict is returned on transient contention during sequence allocation
	ErrSequenceConflict = shared.NewDomainError("SEQUENCE_CONFLICT", "Sequence allocation conflicted with a concurrent transaction")
	// ErrDuplicateSKU signals a counter desynchronized from stored rows; never overwritten silently
	ErrDuplicateSKU = shared.NewDomainError("DUPLICATE_SKU", "Composed SKU collides with an existing product in this tenant")
	// ErrSequenceOverflow is returned when a sequence exceeds the fixed SKU width; a configuration error
	ErrSequenceOverflow = shared.NewDomainError("SEQUENCE_OVERFLOW", "Sequence number exceeds the fixed SKU width")
	// ErrImportCollision is returned when a seed row's numeric SKU already exists for the tenant
	ErrImportCollision = shared.NewDomainError("IMPORT_COLLISION", "Numeric SKU already exists for this tenant")
)
