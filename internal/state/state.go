package state

import "sync"

// OverlayStatus tracks the active overlay selection.
type OverlayStatus int

const (
	OverlayNone OverlayStatus = iota
	OverlayLoading
	OverlayReady
	OverlayFailed
)

func (s OverlayStatus) String() string {
	switch s {
	case OverlayLoading:
		return "loading"
	case OverlayReady:
		return "ready"
	case OverlayFailed:
		return "failed"
	default:
		return "none"
	}
}

// Inputs are the raw values of the plate form. Background and TextColor hold
// the selected swatch name or hex ("" = nothing selected).
type Inputs struct {
	Line1      string
	Line2      string
	Line3      string
	Background string
	TextColor  string
	Overlay    string
}

type State struct {
	Inputs        Inputs
	OverlayStatus OverlayStatus
	// Generation counts overlay selections; loads started under an older
	// generation are stale.
	Generation uint64
	// Renders counts completed render passes.
	Renders uint64
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

// Update applies fn to the state under the write lock.
func (store *Store) Update(fn func(*State)) {
	store.mu.Lock()
	fn(&store.state)
	store.mu.Unlock()
}

func (store *Store) UpdateInputs(fn func(*Inputs)) {
	store.Update(func(s *State) { fn(&s.Inputs) })
}

// NextGeneration bumps and returns the overlay generation.
func (store *Store) NextGeneration() uint64 {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.state.Generation++
	return store.state.Generation
}

func (store *Store) SetOverlayStatus(status OverlayStatus) {
	store.mu.Lock()
	store.state.OverlayStatus = status
	store.mu.Unlock()
}

func (store *Store) MarkRendered() {
	store.mu.Lock()
	store.state.Renders++
	store.mu.Unlock()
}
