package sources

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// GitRefs lists local branch names followed by tag names of the repository
// containing Path.
type GitRefs struct {
	Path string
}

func (g GitRefs) Candidates() ([]string, error) {
	repo, err := git.PlainOpenWithOptions(g.Path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", g.Path, err)
	}

	branches, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	names, err := shortNames(branches)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	tagNames, err := shortNames(tags)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return append(names, tagNames...), nil
}

func shortNames(iter storer.ReferenceIter) ([]string, error) {
	defer iter.Close()
	var names []string
	err := iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	return names, err
}
