package selection

import "sort"

// Manager holds the selections of one text area, sorted by Start and
// never overlapping. It is owned by the UI goroutine and is not safe for
// concurrent use.
type Manager struct {
	sels []Selection
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// All returns a copy of the current selections in offset order.
func (m *Manager) All() []Selection {
	out := make([]Selection, len(m.sels))
	copy(out, m.sels)
	return out
}

// Count returns the number of selections.
func (m *Manager) Count() int {
	return len(m.sels)
}

// Set replaces every selection with sel. An empty sel clears.
func (m *Manager) Set(sel Selection) {
	m.sels = m.sels[:0]
	if !sel.IsEmpty() {
		m.sels = append(m.sels, sel)
	}
}

// Add adds sel, dropping existing selections it overlaps. Empty selections
// are ignored.
func (m *Manager) Add(sel Selection) {
	if sel.IsEmpty() {
		return
	}
	kept := m.sels[:0]
	for _, s := range m.sels {
		if !s.Overlaps(sel) {
			kept = append(kept, s)
		}
	}
	kept = append(kept, sel)
	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	m.sels = kept
}

// Remove drops a selection equal to sel and reports whether one was found.
func (m *Manager) Remove(sel Selection) bool {
	for i, s := range m.sels {
		if s == sel {
			m.sels = append(m.sels[:i], m.sels[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every selection.
func (m *Manager) Clear() {
	m.sels = m.sels[:0]
}

// At returns the selection containing offset, ends included.
func (m *Manager) At(offset int) (Selection, bool) {
	for _, s := range m.sels {
		if s.Contains(offset) {
			return s, true
		}
	}
	return Selection{}, false
}

// ContentInserted shifts selections after an insertion.
func (m *Manager) ContentInserted(offset, length int) {
	for i := range m.sels {
		m.sels[i] = m.sels[i].Shifted(offset, length)
	}
}

// ContentRemoved trims selections after a removal and drops any that
// collapsed.
func (m *Manager) ContentRemoved(offset, length int) {
	kept := m.sels[:0]
	for _, s := range m.sels {
		s = s.Trimmed(offset, length)
		if !s.IsEmpty() {
			kept = append(kept, s)
		}
	}
	m.sels = kept
}
