package param

import "fmt"

// AutoRegistry extends Registry with automatic ID assignment and
// lookup by name, so parameter sets can be declared without hand
// numbering.
type AutoRegistry struct {
	*Registry
	nextID   uint32
	nameToID map[string]uint32
}

// NewAutoRegistry creates a registry with automatic ID management.
func NewAutoRegistry() *AutoRegistry {
	return &AutoRegistry{
		Registry: NewRegistry(),
		nameToID: make(map[string]uint32),
	}
}

// Register adds parameters, assigning the next free ID to any
// parameter whose ID is zero. Zero means "assign for me"; use plain
// Registry.Add when parameter zero must really exist.
func (r *AutoRegistry) Register(params ...*Parameter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range params {
		if _, exists := r.nameToID[p.Name]; exists {
			return fmt.Errorf("param: name %q already registered", p.Name)
		}
		if p.ID == 0 {
			p.ID = r.allocID()
		}
		if existing, exists := r.params[p.ID]; exists {
			return fmt.Errorf("param: ID %d already used by %q", p.ID, existing.Name)
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.params[p.ID] = p
		r.order = append(r.order, p.ID)
		r.nameToID[p.Name] = p.ID
	}
	return nil
}

func (r *AutoRegistry) allocID() uint32 {
	for {
		id := r.nextID
		r.nextID++
		if _, taken := r.params[id]; !taken {
			return id
		}
	}
}

// GetByName retrieves a parameter by name, or nil.
func (r *AutoRegistry) GetByName(name string) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.nameToID[name]
	if !exists {
		return nil
	}
	return r.params[id]
}

// GetID returns the ID registered for a name.
func (r *AutoRegistry) GetID(name string) (uint32, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.nameToID[name]
	return id, exists
}

// Reserve sets aside a block of IDs and returns the first, so a
// caller can hand-number a group without colliding with auto-assigned
// IDs.
func (r *AutoRegistry) Reserve(count uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := r.nextID
	r.nextID += count
	return start
}

// Clear removes all parameters and resets the ID counter.
func (r *AutoRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.params = make(map[uint32]*Parameter)
	r.order = nil
	r.nameToID = make(map[string]uint32)
	r.nextID = 0
}

// RegistryBuilder accumulates registrations, collecting errors until
// Build.
type RegistryBuilder struct {
	registry *AutoRegistry
	errs     []error
}

// NewRegistryBuilder creates a builder for fluent registration.
func NewRegistryBuilder(registry *AutoRegistry) *RegistryBuilder {
	return &RegistryBuilder{registry: registry}
}

// Add builds and registers a parameter.
func (b *RegistryBuilder) Add(builder *Builder) *RegistryBuilder {
	p, err := builder.Build()
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if err := b.registry.Register(p); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Build finalizes the registration and reports any collected errors.
func (b *RegistryBuilder) Build() error {
	if len(b.errs) > 0 {
		return fmt.Errorf("param: registration failed: %v", b.errs)
	}
	return nil
}

// RegisterChannelStrip registers the controls every channel strip
// carries: bypass, gain trim, pan and mix.
func (r *AutoRegistry) RegisterChannelStrip() error {
	return NewRegistryBuilder(r).
		Add(Bypass(0, "Bypass")).
		Add(Gain(0, "Gain")).
		Add(Pan(0, "Pan")).
		Add(Mix(0, "Mix")).
		Build()
}

// RegisterEQBand registers one parametric EQ band.
func (r *AutoRegistry) RegisterEQBand(band int) error {
	prefix := fmt.Sprintf("Band %d", band)
	return NewRegistryBuilder(r).
		Add(Bypass(0, prefix+" Enable")).
		Add(Frequency(0, prefix+" Frequency", 20, 20000, 1000)).
		Add(Gain(0, prefix+" Gain")).
		Add(Q(0, prefix+" Q", 0.1, 10, 0.7)).
		Add(Choice(0, prefix+" Type", []string{"Bell", "Low Shelf", "High Shelf", "Low Pass", "High Pass", "Notch"})).
		Build()
}
