package main

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// profileRefRegex matches GitHub profile paths like "/octocat" or "/octocat/".
var profileRefRegex = regexp.MustCompile(`^/([^/]+)/?$`)

// ParseUsernameArgument accepts an account name or a profile URL such
// as "https://github.com/octocat" and returns the account name.
func ParseUsernameArgument(arg string) (string, error) {
	if !strings.Contains(arg, "://") {
		return arg, nil
	}

	parsedURL, err := url.Parse(arg)
	if err != nil {
		return "", errors.Errorf("invalid username or profile URL %q", arg)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", errors.Errorf("unsupported profile URL scheme in %q", arg)
	}

	matches := profileRefRegex.FindStringSubmatch(parsedURL.Path)
	if len(matches) != 2 {
		return "", errors.Errorf("invalid GitHub profile URL %q", arg)
	}

	return matches[1], nil
}
