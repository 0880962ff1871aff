package entity

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry is an in-memory index of entities discovered from the hub.
//
// Entities are keyed by address (the only globally stable key) with an
// auxiliary name index. Hub-reported order is preserved, so name lookups
// and listings are deterministic. The registry never fabricates entries;
// every record comes from a successfully parsed hub payload handed to
// Upsert.
//
// Thread Safety:
//   - The Registry is NOT safe for concurrent use. Operations are issued
//     one at a time between hub round trips; callers wanting parallelism
//     must synchronise externally.
type Registry struct {
	byAddress map[string]*Entity
	byName    map[string][]string // name -> addresses, insertion order
	order     []string            // addresses in hub-reported order
	logger    Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byAddress: make(map[string]*Entity),
		byName:    make(map[string][]string),
		logger:    noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Upsert replaces the entire registry content with a freshly parsed
// sequence. There is no merge with prior state: a discovery call swaps
// the whole set, so a failed parse must simply not call Upsert and the
// previous set survives.
func (r *Registry) Upsert(entities []Entity) {
	byAddress := make(map[string]*Entity, len(entities))
	byName := make(map[string][]string, len(entities))
	order := make([]string, 0, len(entities))

	for i := range entities {
		e := entities[i].DeepCopy()
		if _, dup := byAddress[e.Address]; !dup {
			order = append(order, e.Address)
		}
		byAddress[e.Address] = e
		byName[e.Name] = append(byName[e.Name], e.Address)
	}

	r.byAddress = byAddress
	r.byName = byName
	r.order = order

	r.logger.Debug("registry replaced", "count", len(order))
}

// GetByAddress retrieves an entity by its hub address.
// Returns ErrNotFound if no entity has that address.
// The returned entity is a deep copy; callers can safely modify it.
func (r *Registry) GetByAddress(address string) (*Entity, error) {
	e, ok := r.byAddress[address]
	if !ok {
		return nil, ErrNotFound
	}
	return e.DeepCopy(), nil
}

// GetByName retrieves an entity by its human-readable name.
//
// Names are not unique on the hub. When several entities share a name the
// first one in hub-reported order wins; this ambiguity is accepted lookup
// behaviour, not an error. Returns ErrNotFound if no entity has the name.
func (r *Registry) GetByName(name string) (*Entity, error) {
	addrs, ok := r.byName[name]
	if !ok || len(addrs) == 0 {
		return nil, ErrNotFound
	}
	return r.byAddress[addrs[0]].DeepCopy(), nil
}

// List returns all entities in hub-reported order.
// The returned entities are deep copies; callers can safely modify them.
func (r *Registry) List() []Entity {
	entities := make([]Entity, 0, len(r.order))
	for _, addr := range r.order {
		entities = append(entities, *r.byAddress[addr].DeepCopy())
	}
	return entities
}

// ListByKind returns all entities of the given kind in hub-reported order.
// The returned entities are deep copies; callers can safely modify them.
func (r *Registry) ListByKind(kind Kind) []Entity {
	var entities []Entity
	for _, addr := range r.order {
		if e := r.byAddress[addr]; e.Kind == kind {
			entities = append(entities, *e.DeepCopy())
		}
	}
	return entities
}

// Count returns the number of registered entities.
func (r *Registry) Count() int {
	return len(r.byAddress)
}
