package search

import (
	"github.com/frobware/repofinder/github"
)

// View is what gets rendered for a repository list.
type View struct {
	// Profile is the owner of the first repository, nil when the
	// list is empty. It is not a separately fetched profile.
	Profile      *github.Owner       `json:"profile,omitempty" yaml:"profile,omitempty"`
	Repositories []github.Repository `json:"repositories" yaml:"repositories"`
	// Version counts display replacements.
	Version uint64 `json:"version" yaml:"-"`
}

// BuildView derives the view for repos without reordering them.
func BuildView(repos []github.Repository) View {
	view := View{
		Repositories: make([]github.Repository, len(repos)),
	}
	copy(view.Repositories, repos)

	if len(view.Repositories) > 0 {
		owner := view.Repositories[0].Owner
		view.Profile = &owner
	}

	return view
}

// Empty reports whether nothing would be rendered.
func (v View) Empty() bool {
	return len(v.Repositories) == 0
}
