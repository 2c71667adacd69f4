package search

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/frobware/repofinder/github"
)

// RepositoryLister fetches an account's repositories.
type RepositoryLister interface {
	ListUserRepos(ctx context.Context, username string) ([]github.Repository, error)
}

// Fetcher turns committed search terms into display updates. Each
// non-empty term starts one independent request; nothing is cancelled
// or retried.
type Fetcher struct {
	ctx     context.Context
	lister  RepositoryLister
	display *Display
	log     *zap.Logger
	ordered bool

	seq atomic.Uint64
	wg  sync.WaitGroup
}

// NewFetcher returns a fetcher writing to display. When ordered is
// false whichever response resolves last is shown; when true a
// response older than the one displayed is discarded.
func NewFetcher(ctx context.Context, lister RepositoryLister, display *Display, log *zap.Logger, ordered bool) *Fetcher {
	return &Fetcher{
		ctx:     ctx,
		lister:  lister,
		display: display,
		log:     log,
		ordered: ordered,
	}
}

// OnCommit is the Controller observer. An empty term leaves the
// display untouched.
func (f *Fetcher) OnCommit(term string) {
	if term == "" {
		f.log.Debug("empty search term, not fetching")
		return
	}

	seq := f.seq.Add(1)

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		f.fetch(term, seq)
	}()
}

func (f *Fetcher) fetch(term string, seq uint64) {
	log := f.log.With(zap.String("username", term), zap.Uint64("seq", seq))
	log.Debug("fetching repositories")

	repos, err := f.lister.ListUserRepos(f.ctx, term)
	if err != nil {
		log.Warn("failed to fetch repositories", zap.Error(err))
		repos = nil
	} else {
		log.Debug("fetched repositories", zap.Int("count", len(repos)))
	}

	if !f.ordered {
		f.display.Replace(seq, repos)
		return
	}

	if !f.display.ReplaceIfNewer(seq, repos) {
		log.Debug("discarding stale response")
	}
}

// Wait blocks until every started fetch has resolved.
func (f *Fetcher) Wait() {
	f.wg.Wait()
}
