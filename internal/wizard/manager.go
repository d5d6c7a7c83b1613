package wizard

import (
	"sync"

	"github.com/google/uuid"
	"github.com/utsav-fest/utsav-api/internal/catalog"
)

// Manager tracks in-flight wizards by session id. Sessions live in
// memory only; a restart drops them back to the sign-in step, same as a
// page reload did.
type Manager struct {
	mu       sync.Mutex
	deps     Deps
	sessions map[string]*Wizard
}

func NewManager(deps Deps) *Manager {
	return &Manager{
		deps:     deps,
		sessions: make(map[string]*Wizard),
	}
}

// Open starts a fresh wizard for the event and returns its session id.
func (m *Manager) Open(ev catalog.Event) (string, *Wizard) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	w := New(ev, m.deps)
	m.sessions[id] = w
	return id, w
}

func (m *Manager) Get(id string) (*Wizard, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.sessions[id]
	return w, ok
}

// Close tears the session down and reports whether it had committed a
// registration.
func (m *Manager) Close(id string) (bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.sessions[id]
	if !ok {
		return false, false
	}
	delete(m.sessions, id)
	return w.Close(), true
}
