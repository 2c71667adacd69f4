// Package main implements repofinder, a small client for the GitHub
// REST API that lists an account's public repositories.
//
// Given a USERNAME it searches once and prints the owner's profile link
// followed by one link per repository. With --serve it serves a search
// page: a text box, a button, and a results region showing the avatar
// and repository links of the last search.
//
// Every search is a single unauthenticated GET users/{username}/repos.
// A failed request, whatever the cause, shows an empty list.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/frobware/repofinder/github"
	"github.com/frobware/repofinder/search"
)

func main() {
	env, err := LoadEnvironment(".env")
	if err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	config := Parse(env)

	logger, err := NewLogger(config.DebugMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userAgent := Get().UserAgent()
	clientFactory := func(apiURL string) (search.RepositoryLister, error) {
		client, err := github.NewClient(apiURL, nil)
		if err != nil {
			return nil, err
		}
		client.SetUserAgent(userAgent)
		return client, nil
	}

	result, err := Run(ctx, config, clientFactory, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := FormatResult(os.Stdout, result, config); err != nil {
		log.Fatalf("Failed to format output: %v", err)
	}
}
