// Package search wires a query controller to a repository fetcher and
// the display it feeds.
//
// Typing only updates the controller. Committing notifies the fetcher,
// which issues one request per non-empty term and replaces the display
// with the result, or with an empty list on failure.
package search

import (
	"context"

	"go.uber.org/zap"
)

// Options tunes a Session.
type Options struct {
	// Ordered discards responses that resolve after a newer one.
	Ordered bool
}

// Session is one controller, one fetcher and one display.
type Session struct {
	Controller *Controller
	Display    *Display

	fetcher     *Fetcher
	unsubscribe func()
}

// NewSession returns a session whose fetches run under ctx.
func NewSession(ctx context.Context, lister RepositoryLister, log *zap.Logger, opts Options) *Session {
	display := NewDisplay()
	fetcher := NewFetcher(ctx, lister, display, log.Named("fetcher"), opts.Ordered)
	controller := NewController()

	return &Session{
		Controller:  controller,
		Display:     display,
		fetcher:     fetcher,
		unsubscribe: controller.Subscribe(fetcher.OnCommit),
	}
}

// Search sets the typed text to username and commits it.
func (s *Session) Search(username string) {
	s.Controller.SetTypedText(username)
	s.Controller.Commit()
}

// Wait blocks until in-flight fetches have resolved.
func (s *Session) Wait() {
	s.fetcher.Wait()
}

// Close detaches the fetcher and waits for in-flight fetches.
func (s *Session) Close() {
	s.unsubscribe()
	s.fetcher.Wait()
}
