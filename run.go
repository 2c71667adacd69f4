package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/cli/go-gh/pkg/browser"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/frobware/repofinder/search"
	"github.com/frobware/repofinder/web"
)

// Result represents the output of running the application.
type Result interface{}

// ListResult is the display after a one-shot search.
type ListResult struct {
	Username string
	View     search.View
}

// ServeResult reports where the search page was served.
type ServeResult struct {
	Addr string
}

const shutdownTimeout = 5 * time.Second

// openBrowser is replaced in tests.
var openBrowser = func(url string) error {
	b := browser.New("", os.Stdout, os.Stderr)
	return b.Browse(url)
}

// Run executes the main application logic and returns structured data.
// In server mode it blocks until ctx is cancelled.
func Run(ctx context.Context, config *Config, clientFactory ClientFactory, log *zap.Logger) (Result, error) {
	lister, err := clientFactory(config.APIURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}

	session := search.NewSession(ctx, lister, log, search.Options{Ordered: config.Ordered})
	defer session.Close()

	if config.Serve {
		ln, err := net.Listen("tcp", config.Addr)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to listen on %s", config.Addr)
		}
		return serve(ctx, ln, config, session, log)
	}

	session.Search(config.Username)
	session.Wait()

	return ListResult{
		Username: config.Username,
		View:     session.Display.Snapshot(),
	}, nil
}

// serve runs the search page on ln until ctx is cancelled.
func serve(ctx context.Context, ln net.Listener, config *Config, session *search.Session, log *zap.Logger) (Result, error) {
	server, err := web.NewServer(session, log.Named("web"))
	if err != nil {
		ln.Close()
		return nil, err
	}

	httpServer := &http.Server{
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	addr := ln.Addr().String()
	url := "http://" + addr + "/"
	log.Info("serving search page", zap.String("url", url))

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()

	if config.Open {
		if err := openBrowser(url); err != nil {
			log.Warn("failed to open browser", zap.Error(err))
		}
	}

	select {
	case err := <-errCh:
		return nil, errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return nil, errors.Wrap(err, "failed to shut down")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return nil, errors.Wrap(err, "server failed")
	}

	return ServeResult{Addr: addr}, nil
}
