package usecase

import (
	"strings"
	"sync"
)

// AIRequestTicket tags an in-flight AI request with the estimate it targets.
// Generation changes every time a different estimate is opened.
type AIRequestTicket struct {
	EstimateID string
	Generation uint64
}

// ActiveEstimate tracks which estimate the session currently has open.
//
// AI results that merge into the store are only applied while their target
// estimate is still the active one. With the guard disabled every result is
// applied, which matches the dashboard's historical behaviour.
type ActiveEstimate struct {
	mu         sync.Mutex
	id         string
	generation uint64
	guard      bool
}

func NewActiveEstimate(guard bool) *ActiveEstimate {
	return &ActiveEstimate{guard: guard}
}

// Select makes id the active estimate. An empty id means nothing is open.
func (a *ActiveEstimate) Select(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selectLocked(id)
}

func (a *ActiveEstimate) selectLocked(id string) {
	id = strings.TrimSpace(id)
	if id != a.id {
		a.id = id
		a.generation++
	}
}

// ID returns the active estimate id.
func (a *ActiveEstimate) ID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.id
}

// Begin marks estimateID active and returns a ticket for a request targeting it.
func (a *ActiveEstimate) Begin(estimateID string) AIRequestTicket {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selectLocked(estimateID)
	return AIRequestTicket{EstimateID: a.id, Generation: a.generation}
}

// Current reports whether the ticket's estimate has stayed active since Begin.
func (a *ActiveEstimate) Current(t AIRequestTicket) bool {
	if !a.guard {
		return true
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentLocked(t)
}

func (a *ActiveEstimate) currentLocked(t AIRequestTicket) bool {
	return a.id == t.EstimateID && a.generation == t.Generation
}

// Apply runs write only if the ticket is still current, and holds the tracker
// lock until write returns so no Select can land between the check and the
// commit. write must not call back into the tracker.
func (a *ActiveEstimate) Apply(t AIRequestTicket, write func() error) error {
	if !a.guard {
		return write()
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.currentLocked(t) {
		return ErrStaleAIResponse
	}
	return write()
}
