package interaction

import (
	"sync"

	"github.com/atomicstack/tmux-stackbar/internal/logging/events"
)

// Phase is the controller's state.
type Phase int

const (
	Idle Phase = iota
	Active
)

func (p Phase) String() string {
	if p == Active {
		return "active"
	}
	return "idle"
}

// State is a snapshot of the active highlight. All fields are zero while Idle.
type State struct {
	Phase  Phase
	Key    string
	Anchor Element
	Value  float64
	Color  string
}

// Active reports whether a highlight is showing.
func (s State) Active() bool {
	return s.Phase == Active
}

// Controller owns the single active highlight shared by bar segments and
// legend entries. Transitions are synchronous and serialised by one mutex.
type Controller struct {
	mu       sync.Mutex
	state    State
	registry *Registry
}

// NewController returns an idle controller with no registry bound.
func NewController() *Controller {
	return &Controller{}
}

// Hover activates key unless it is already the active key. The anchor is the
// first element registered under key in the bound registry, nil if absent.
// It reports whether the state changed.
func (c *Controller) Hover(key string, value float64, color string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Phase == Active && c.state.Key == key {
		return false
	}
	anchor, _ := c.registry.Lookup(key)
	c.state = State{
		Phase:  Active,
		Key:    key,
		Anchor: anchor,
		Value:  value,
		Color:  color,
	}
	events.Chart.Hover(key, value, anchor != nil)
	return true
}

// Leave clears the active highlight. It is a no-op while idle.
func (c *Controller) Leave() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Phase != Active {
		return false
	}
	key := c.state.Key
	c.state = State{}
	events.Chart.Leave(key)
	return true
}

// Bind attaches the registry of a new render pass and re-resolves the anchor
// of the active key against it.
func (c *Controller) Bind(r *Registry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registry = r
	if c.state.Phase == Active {
		c.state.Anchor, _ = r.Lookup(c.state.Key)
	}
}

// Reset returns to idle and drops the bound registry.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{}
	c.registry = nil
}

// State returns a snapshot of the current highlight.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
