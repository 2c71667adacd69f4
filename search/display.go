package search

import (
	"slices"
	"sync"

	"github.com/frobware/repofinder/github"
)

// Display owns the repository list currently shown. Every replacement
// is published to subscribers as a new View.
type Display struct {
	mu        sync.Mutex
	repos     []github.Repository
	seq       uint64
	version   uint64
	listeners map[chan View]struct{}
}

// NewDisplay returns an empty display.
func NewDisplay() *Display {
	return &Display{
		listeners: make(map[chan View]struct{}),
	}
}

// Replace shows repos unconditionally. seq identifies the fetch that
// produced them.
func (d *Display) Replace(seq uint64, repos []github.Repository) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.replaceLocked(seq, repos)
}

// ReplaceIfNewer shows repos unless a later fetch is already shown.
// It reports whether the display changed.
func (d *Display) ReplaceIfNewer(seq uint64, repos []github.Repository) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if seq < d.seq {
		return false
	}

	d.replaceLocked(seq, repos)
	return true
}

func (d *Display) replaceLocked(seq uint64, repos []github.Repository) {
	d.repos = slices.Clone(repos)
	d.seq = seq
	d.version++

	view := d.viewLocked()
	for ch := range d.listeners {
		publish(ch, view)
	}
}

// publish hands view to ch, dropping a stale pending view so slow
// listeners only ever see the latest one.
func publish(ch chan View, view View) {
	select {
	case ch <- view:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- view:
	default:
	}
}

// Snapshot returns the current view.
func (d *Display) Snapshot() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewLocked()
}

func (d *Display) viewLocked() View {
	view := BuildView(d.repos)
	view.Version = d.version
	return view
}

// Subscribe returns a channel receiving a View after every
// replacement. The cancel function closes the channel.
func (d *Display) Subscribe() (<-chan View, func()) {
	ch := make(chan View, 1)

	d.mu.Lock()
	d.listeners[ch] = struct{}{}
	d.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			delete(d.listeners, ch)
			close(ch)
		})
	}

	return ch, cancel
}
