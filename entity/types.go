package entity

import "time"

// Entity is one addressable object reported by the hub: a device, a group
// (scene), a folder, or a program. The variant is carried in Kind; Kind never
// changes after creation, only State does.
type Entity struct {
	// Identity
	Address string
	Name    string
	Kind    Kind

	// State is the last-known status value as reported by the hub. The hub's
	// status vocabulary is not fully enumerable, so the value is kept as an
	// opaque string ("255", "On", "true", ...) and may be stale until the
	// next discovery call.
	State string

	Enabled bool

	// ParentID is the hub-assigned parent folder ID. Only populated for
	// programs and program folders.
	ParentID string

	// Members holds the addresses of group members. Only populated for groups.
	Members []string

	// Properties retains hub-reported fields that have no dedicated slot
	// above, keyed by the hub's own names ("ST", "ST.formatted", "type",
	// "pnode", ...). Kept raw for forward compatibility with firmware fields
	// this library does not model.
	Properties map[string]string

	// Program run timestamps, nil when the hub did not report them.
	LastRunAt      *time.Time
	LastFinishedAt *time.Time
	NextRunAt      *time.Time
}

// DeepCopy creates a complete independent copy of the Entity.
// Map and slice fields are cloned so modifications to the copy do not
// affect registry-held records.
func (e *Entity) DeepCopy() *Entity {
	if e == nil {
		return nil
	}

	cpy := *e

	if e.Members != nil {
		cpy.Members = make([]string, len(e.Members))
		copy(cpy.Members, e.Members)
	}

	if e.Properties != nil {
		cpy.Properties = make(map[string]string, len(e.Properties))
		for k, v := range e.Properties {
			cpy.Properties[k] = v
		}
	}

	// *time.Time fields point at immutable values; no clone needed.

	return &cpy
}

// Kind distinguishes the entity variants the hub reports. It determines
// which commands are valid for an entity.
type Kind string

// Kind constants.
const (
	KindDevice  Kind = "device"
	KindGroup   Kind = "group"
	KindFolder  Kind = "folder"
	KindProgram Kind = "program"
)

// AllKinds returns all valid kind values.
func AllKinds() []Kind {
	return []Kind{KindDevice, KindGroup, KindFolder, KindProgram}
}
