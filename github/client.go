package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v48/github"
	"github.com/pkg/errors"
)

// DefaultAPIURL is the public GitHub REST API.
const DefaultAPIURL = "https://api.github.com/"

// Client lists repositories through the GitHub REST API. Requests are
// unauthenticated.
type Client struct {
	api *gogithub.Client
}

// NewClient returns a client for the REST API rooted at apiURL. An
// empty apiURL selects DefaultAPIURL. A nil httpClient selects
// http.DefaultClient.
func NewClient(apiURL string, httpClient *http.Client) (*Client, error) {
	api := gogithub.NewClient(httpClient)

	if apiURL != "" {
		baseURL, err := ParseAPIURL(apiURL)
		if err != nil {
			return nil, err
		}
		api.BaseURL = baseURL
	}

	return &Client{api: api}, nil
}

// ParseAPIURL validates an API root and normalises it to end in a
// slash, which go-github requires for relative resolution.
func ParseAPIURL(s string) (*url.URL, error) {
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse api url %q", s)
	}

	if !u.IsAbs() || u.Host == "" {
		return nil, errors.Errorf("api url %q is not absolute", s)
	}

	return u, nil
}

// ListUserRepos issues GET users/{username}/repos with no query
// parameters and returns the first page as the API ordered it.
func (c *Client) ListUserRepos(ctx context.Context, username string) ([]Repository, error) {
	repos, resp, err := c.api.Repositories.List(ctx, url.PathEscape(username), nil)
	if err != nil {
		return nil, newFetchError(username, resp, err)
	}

	return fromAPI(repos), nil
}

// SetUserAgent overrides the User-Agent header sent with requests.
func (c *Client) SetUserAgent(ua string) {
	c.api.UserAgent = ua
}
