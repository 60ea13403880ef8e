package ui

import (
	"context"
	"sync"
)

// Actions maps names to buttons whose handlers run on the server when the
// rendered control is clicked.
type Actions struct {
	mu      sync.RWMutex
	buttons map[string]*Button
	order   []string
}

func NewActions() *Actions {
	return &Actions{buttons: make(map[string]*Button)}
}

// Register adds or replaces the button under name.
func (a *Actions) Register(name string, b *Button) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.buttons[name]; !exists {
		a.order = append(a.order, name)
	}
	a.buttons[name] = b
}

func (a *Actions) Get(name string) (*Button, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	b, ok := a.buttons[name]
	return b, ok
}

// Buttons returns the registered buttons in registration order.
func (a *Actions) Buttons() []*Button {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*Button, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.buttons[name])
	}
	return out
}

// Dispatch activates the named button. It reports whether the name is known
// and whether its handler ran.
func (a *Actions) Dispatch(ctx context.Context, name string) (found, invoked bool) {
	b, ok := a.Get(name)
	if !ok {
		return false, false
	}
	return true, b.Activate(ctx)
}
