// Package snapshot keeps the one in-memory materialized view of the leads
// collection. The application root owns the single store subscription and
// replaces the snapshot wholesale on every change notification; readers
// always see a consistent, fully materialized collection and never a
// partial update.
package snapshot

import (
	"sync"

	"github.com/shirshiz/studio-crm/internal/entity"
)

type Holder struct {
	mu      sync.RWMutex
	leads   []entity.Lead
	version uint64
}

func NewHolder() *Holder {
	return &Holder{}
}

// Replace swaps the whole snapshot. The new slice is owned by the holder
// from here on.
func (h *Holder) Replace(leads []entity.Lead) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leads = leads
	h.version++
}

// Leads returns the current snapshot. Callers must treat it as read-only;
// every aggregation is a pure function over it.
func (h *Holder) Leads() []entity.Lead {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.leads
}

// Lead looks a single record up by id in the current snapshot.
func (h *Holder) Lead(id string) (entity.Lead, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, l := range h.leads {
		if l.ID == id {
			return l, true
		}
	}
	return entity.Lead{}, false
}

// Version increments on every Replace; memoized consumers can key on it.
func (h *Holder) Version() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.version
}
