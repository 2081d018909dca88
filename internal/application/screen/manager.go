package screen

import (
	"log"
	"slices"

	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/domain/graphics"
)

type command struct {
	add    Screen // nil for a removal
	remove string
}

// Manager holds the active screens.
//
// Add and Remove take effect immediately between passes. During an Update or
// Draw pass they are queued and applied together when the pass ends: every
// removal first, each followed by OnExit, then every addition, each followed
// by OnEnter.
type Manager struct {
	screens []Screen
	pending []command
	inPass  bool
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add activates s. It returns false when a screen with the same name is
// already active and not about to be removed.
func (m *Manager) Add(s Screen) bool {
	if s == nil {
		return false
	}
	name := s.Name()
	if m.taken(name) {
		log.Printf("screen: %q is already active", name)
		return false
	}

	if m.inPass {
		m.pending = append(m.pending, command{add: s})
		return true
	}
	m.screens = append(m.screens, s)
	s.OnEnter()
	return true
}

// Remove deactivates the screen called name. Unknown names are ignored.
func (m *Manager) Remove(name string) {
	if m.inPass {
		if m.index(name) >= 0 || m.pendingAdd(name) {
			m.pending = append(m.pending, command{remove: name})
		}
		return
	}
	if i := m.index(name); i >= 0 {
		s := m.screens[i]
		m.screens = slices.Delete(m.screens, i, i+1)
		s.OnExit()
	}
}

// Update runs one update pass. Screens are updated in insertion order and
// only the topmost one receives touches. The first error stops the pass;
// queued changes are applied either way.
func (m *Manager) Update(t clock.ElapsedTime, touches []input.TouchEvent) error {
	snapshot := m.begin()
	defer m.end()

	for i, s := range snapshot {
		var tt []input.TouchEvent
		if i == len(snapshot)-1 {
			tt = touches
		}
		if err := s.Update(t, tt); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws every screen back to front.
func (m *Manager) Draw(t clock.ElapsedTime, sink graphics.Sink) {
	snapshot := m.begin()
	defer m.end()

	for _, s := range snapshot {
		s.Draw(t, sink)
	}
}

// Get returns the active screen called name.
func (m *Manager) Get(name string) (Screen, bool) {
	if i := m.index(name); i >= 0 {
		return m.screens[i], true
	}
	return nil, false
}

// Top returns the screen that receives input.
func (m *Manager) Top() (Screen, bool) {
	if len(m.screens) == 0 {
		return nil, false
	}
	return m.screens[len(m.screens)-1], true
}

// Names returns the active screen names in insertion order.
func (m *Manager) Names() []string {
	names := make([]string, len(m.screens))
	for i, s := range m.screens {
		names[i] = s.Name()
	}
	return names
}

// Len returns the number of active screens.
func (m *Manager) Len() int {
	return len(m.screens)
}

// Clear deactivates every screen, topmost first, and drops queued changes.
func (m *Manager) Clear() {
	m.pending = nil
	screens := m.screens
	m.screens = nil
	for i := len(screens) - 1; i >= 0; i-- {
		screens[i].OnExit()
	}
}

func (m *Manager) begin() []Screen {
	m.inPass = true
	return slices.Clone(m.screens)
}

func (m *Manager) end() {
	m.inPass = false
	pending := m.pending
	m.pending = nil

	var entering []Screen
	for _, c := range pending {
		if c.add != nil {
			entering = append(entering, c.add)
			continue
		}
		if i := slices.IndexFunc(entering, func(s Screen) bool { return s.Name() == c.remove }); i >= 0 {
			// Added and removed within the same pass: it never enters.
			entering = slices.Delete(entering, i, i+1)
			continue
		}
		if i := m.index(c.remove); i >= 0 {
			s := m.screens[i]
			m.screens = slices.Delete(m.screens, i, i+1)
			s.OnExit()
		}
	}

	for _, s := range entering {
		m.screens = append(m.screens, s)
	}
	for _, s := range entering {
		s.OnEnter()
	}
}

func (m *Manager) index(name string) int {
	return slices.IndexFunc(m.screens, func(s Screen) bool { return s.Name() == name })
}

func (m *Manager) pendingAdd(name string) bool {
	added := false
	for _, c := range m.pending {
		switch {
		case c.add != nil && c.add.Name() == name:
			added = true
		case c.add == nil && c.remove == name:
			added = false
		}
	}
	return added
}

func (m *Manager) pendingRemove(name string) bool {
	removed := false
	for _, c := range m.pending {
		switch {
		case c.add == nil && c.remove == name:
			removed = true
		case c.add != nil && c.add.Name() == name:
			removed = false
		}
	}
	return removed
}

// taken reports whether name will be active once queued changes apply.
func (m *Manager) taken(name string) bool {
	if m.pendingAdd(name) {
		return true
	}
	return m.index(name) >= 0 && !m.pendingRemove(name)
}
