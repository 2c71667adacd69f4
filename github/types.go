package github

import (
	gogithub "github.com/google/go-github/v48/github"
)

// Owner is the account a repository belongs to.
type Owner struct {
	Login     string `json:"login" yaml:"login"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
	HTMLURL   string `json:"html_url" yaml:"html_url"`
}

// Repository represents the subset of a GitHub repository needed to
// render a link to it.
type Repository struct {
	ID      int64  `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	HTMLURL string `json:"html_url" yaml:"html_url"`
	Owner   Owner  `json:"owner" yaml:"owner"`
}

// fromAPI converts go-github repositories, keeping the order the API
// returned them in.
func fromAPI(repos []*gogithub.Repository) []Repository {
	result := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			continue
		}
		result = append(result, Repository{
			ID:      r.GetID(),
			Name:    r.GetName(),
			HTMLURL: r.GetHTMLURL(),
			Owner: Owner{
				Login:     r.GetOwner().GetLogin(),
				AvatarURL: r.GetOwner().GetAvatarURL(),
				HTMLURL:   r.GetOwner().GetHTMLURL(),
			},
		})
	}
	return result
}
