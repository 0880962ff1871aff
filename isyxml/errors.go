package isyxml

import (
	"errors"
	"fmt"
)

// Sentinel errors for hub payload parsing.
var (
	// ErrParse indicates a payload that does not conform to the hub's
	// REST XML schema. Parsing is all-or-nothing: one bad record fails
	// the whole payload so a partial set never reaches the registry.
	ErrParse = errors.New("isyxml: malformed payload")

	// ErrMissingAddress indicates a record without an address. It wraps
	// ErrParse, so errors.Is(err, ErrParse) also holds.
	ErrMissingAddress = fmt.Errorf("%w: element missing address", ErrParse)
)
