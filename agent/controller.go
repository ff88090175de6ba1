package agent

import "sync"

// Observer is notified after every accepted transition
type Observer func(prev, next State)

// Controller serializes event application for one session
type Controller struct {
	mu        sync.Mutex
	state     State
	observers []Observer
}

// NewController creates a controller starting from the given state
func NewController(initial State) *Controller {
	return &Controller{state: initial}
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers an observer
func (c *Controller) Subscribe(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// Dispatch applies an event. On error the state is left unchanged.
func (c *Controller) Dispatch(ev Event) (State, error) {
	c.mu.Lock()
	prev := c.state
	next, err := Reduce(prev, ev)
	if err != nil {
		c.mu.Unlock()
		return prev, err
	}
	c.state = next
	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, o := range observers {
		o(prev, next)
	}
	return next, nil
}
