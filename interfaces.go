package main

import (
	"github.com/frobware/repofinder/search"
)

// ClientFactory creates the repository lister for an API root.
type ClientFactory func(apiURL string) (search.RepositoryLister, error)
