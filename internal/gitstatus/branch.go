package gitstatus

import (
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// DetachedHead is reported when HEAD points at a commit rather than a branch.
const DetachedHead = "HEAD"

// Branch returns the checked-out branch of the repository enclosing dir.
// ok is false when dir is not inside a repository. An unborn branch (no
// commits yet) still reports its name.
func Branch(dir string) (name string, ok bool, err error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", false, nil
		}
		return "", false, err
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", false, err
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), true, nil
	}
	return DetachedHead, true, nil
}
