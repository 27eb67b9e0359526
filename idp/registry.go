package idp

import (
	"fmt"
	"sort"
	"sync"

	"github.com/kbukum/idkit/logger"
)

// Registry is a thread-safe registry of built provider descriptors,
// keyed by provider id. The external OAuth engine consults it per login
// to find the descriptor for the requested provider.
//
//	reg := idp.NewRegistry(log)
//	reg.Register(keypDesc)
//	reg.Register(googleDesc)
//	desc, _ := reg.Get("keyp")
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
	defaultID   string
	log         *logger.Logger
}

// NewRegistry creates a new empty Registry. A nil logger is replaced
// with a no-op logger.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		descriptors: make(map[string]*Descriptor),
		log:         log.WithComponent("idp.registry"),
	}
}

// Register adds a built descriptor to the registry.
// If this is the first descriptor registered, it becomes the default.
// Registering the same provider id again replaces the previous entry.
func (r *Registry) Register(d *Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors[d.ID] = d
	if r.defaultID == "" {
		r.defaultID = d.ID
	}
	r.log.Info("provider registered", logger.Fields(
		logger.FieldProvider, d.ID,
		"protocol", string(d.Protocol),
		"client_auth", string(d.ClientAuthMethod),
	))
}

// Build runs the builder and registers the result. A failed build is
// logged and leaves the registry untouched, so one misconfigured
// provider does not take down the others.
func (r *Registry) Build(builder Builder, cfg UserConfig) error {
	d, err := builder(cfg)
	if err != nil {
		r.log.Error("provider registration failed", logger.ErrorFields("build", err))
		return err
	}
	r.Register(d)
	return nil
}

// Get returns the descriptor registered under the given provider id.
func (r *Registry) Get(id string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[id]
	return d, ok
}

// MustGet returns the descriptor registered under the given provider id.
// Panics if the id is not registered.
func (r *Registry) MustGet(id string) *Descriptor {
	d, ok := r.Get(id)
	if !ok {
		panic(fmt.Sprintf("idp: provider %q not registered", id))
	}
	return d
}

// Default returns the default descriptor. The default is the first
// registered descriptor unless overridden with SetDefault.
func (r *Registry) Default() (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.defaultID == "" {
		return nil, false
	}
	d, ok := r.descriptors[r.defaultID]
	return d, ok
}

// SetDefault sets the default provider by id. The id must already be
// registered.
func (r *Registry) SetDefault(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.descriptors[id]; !ok {
		return fmt.Errorf("idp: provider %q not registered", id)
	}
	r.defaultID = id
	return nil
}

// Names returns the sorted ids of all registered providers.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
