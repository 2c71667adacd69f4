package search

import (
	"sync"
)

// Controller holds the two query cells: the text currently typed and
// the search term last committed. Only Commit notifies observers.
type Controller struct {
	mu        sync.Mutex
	typed     string
	committed string
	observers []*subscription
}

type subscription struct {
	notify func(term string)
}

// NewController returns a controller with both cells empty.
func NewController() *Controller {
	return &Controller{}
}

// SetTypedText records in-progress input. Any string is accepted.
func (c *Controller) SetTypedText(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.typed = value
}

// TypedText returns the in-progress input.
func (c *Controller) TypedText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.typed
}

// Committed returns the search term last committed.
func (c *Controller) Committed() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.committed
}

// Commit copies the typed text into the committed term and then calls
// every observer with it, in subscription order. Observers run on the
// caller's goroutine and are called even when the term is unchanged.
func (c *Controller) Commit() {
	c.mu.Lock()
	c.committed = c.typed
	term := c.committed
	observers := make([]*subscription, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, o := range observers {
		o.notify(term)
	}
}

// Subscribe registers fn to be called after each Commit. The returned
// function removes the registration.
func (c *Controller) Subscribe(fn func(term string)) func() {
	o := &subscription{notify: fn}

	c.mu.Lock()
	c.observers = append(c.observers, o)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, existing := range c.observers {
			if existing == o {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}
