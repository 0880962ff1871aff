package entity

import "errors"

// Domain errors for the entity package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, entity.ErrNotFound) {
//	    // handle lookup miss
//	}
var (
	// ErrNotFound is returned when no entity matches the requested address
	// or name.
	ErrNotFound = errors.New("entity: not found")
)
