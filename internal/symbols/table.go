package symbols

import "sync"

// Handle identifies an interned identifier. Handles are dense indexes into
// the table and stay valid for the table's lifetime.
type Handle int

// Invalid is never returned by Intern.
const Invalid Handle = -1

// Table interns identifier text. It is append-only: a string keeps the
// handle it was first given and handles are never reused.
//
// A Table is safe for concurrent use, but the usual setup is one table per
// input so separate parses never see each other's names.
type Table struct {
	mu      sync.RWMutex
	names   []string
	handles map[string]Handle
}

func NewTable() *Table {
	return &Table{
		names:   []string{},
		handles: map[string]Handle{},
	}
}

// Intern returns the handle for name, appending it if it was not seen before.
func (t *Table) Intern(name string) Handle {
	t.mu.RLock()
	h, ok := t.handles[name]
	t.mu.RUnlock()
	if ok {
		return h
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// another writer may have won between the two locks
	if h, ok := t.handles[name]; ok {
		return h
	}

	h = Handle(len(t.names))
	t.names = append(t.names, name)
	t.handles[name] = h
	return h
}

func (t *Table) Lookup(name string) (Handle, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	h, ok := t.handles[name]
	return h, ok
}

// Name returns the text behind h.
func (t *Table) Name(h Handle) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if h < 0 || int(h) >= len(t.names) {
		return "", false
	}
	return t.names[h], true
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.names)
}

// Names returns a copy of the interned strings in handle order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
