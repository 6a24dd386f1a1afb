package trap

import "errors"

// Sentinel errors for trap operations.
var (
	// ErrNegativeHeight indicates a bar below the zero baseline.
	ErrNegativeHeight = errors.New("trap: height must be non-negative")
)
