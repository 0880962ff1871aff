// Package entity provides the normalized data model for objects reported by
// an ISY hub, and the in-memory Registry that indexes them.
//
// # Key Types
//
//   - Entity: one addressable hub object (device, group, folder, or program)
//   - Kind: the variant tag that decides which commands apply
//   - Registry: address-keyed index with a name lookup and kind filtering
//
// # Usage
//
//	reg := entity.NewRegistry()
//	reg.Upsert(parsed) // full replacement, no merge
//
//	e, err := reg.GetByAddress("1A 2B 3C")
//	if errors.Is(err, entity.ErrNotFound) {
//	    // unknown address
//	}
//
//	lights := reg.ListByKind(entity.KindDevice)
//
// # Name lookup ambiguity
//
// The hub does not enforce unique names. GetByName returns the first match
// in hub-reported order; callers that need an exact target should use
// addresses.
//
// # Thread Safety
//
// The Registry is not safe for concurrent use. The call model of this
// library is single-threaded and synchronous; external synchronisation is
// required for anything else.
package entity
