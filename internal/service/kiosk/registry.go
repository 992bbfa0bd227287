package kiosk

import (
	"sync"

	"github.com/Domenick1991/kiosk/internal/storage"
)

// Registry keeps one Kiosk per device, created on first use.
type Registry struct {
	stores storage.Factory
	deps   Deps

	mu     sync.Mutex
	kiosks map[string]*Kiosk
}

func NewRegistry(stores storage.Factory, deps Deps) *Registry {
	return &Registry{stores: stores, deps: deps, kiosks: make(map[string]*Kiosk)}
}

func (r *Registry) Get(deviceID string) *Kiosk {
	r.mu.Lock()
	defer r.mu.Unlock()

	k, ok := r.kiosks[deviceID]
	if !ok {
		k = New(deviceID, r.stores(deviceID), r.deps)
		r.kiosks[deviceID] = k
	}
	return k
}

// Lookup returns the kiosk only if it already exists.
func (r *Registry) Lookup(deviceID string) (*Kiosk, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k, ok := r.kiosks[deviceID]
	return k, ok
}

// Remove unmounts the device's kiosk and forgets it. Its persisted state
// stays in the device store.
func (r *Registry) Remove(deviceID string) bool {
	r.mu.Lock()
	k, ok := r.kiosks[deviceID]
	delete(r.kiosks, deviceID)
	r.mu.Unlock()

	if ok {
		k.Unmount()
	}
	return ok
}

// Close unmounts every kiosk and waits for their background work.
func (r *Registry) Close() {
	r.mu.Lock()
	kiosks := make([]*Kiosk, 0, len(r.kiosks))
	for _, k := range r.kiosks {
		kiosks = append(kiosks, k)
	}
	r.kiosks = make(map[string]*Kiosk)
	r.mu.Unlock()

	for _, k := range kiosks {
		k.Unmount()
	}
	for _, k := range kiosks {
		k.Wait()
	}
}
