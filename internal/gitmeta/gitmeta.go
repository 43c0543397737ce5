// Package gitmeta resolves the repository state a report is rendered from.
// Decorated report formats show it; the JSON artifact never carries it.
package gitmeta

import (
	git "github.com/go-git/go-git/v5"
)

// Provenance captures the commit a render ran against.
type Provenance struct {
	Commit string
	Branch string
	Dirty  bool
}

// Resolve returns provenance for the repository containing target, or nil
// when target is not inside a repository. Resolution is best-effort: any
// failure yields nil rather than an error, since provenance only decorates.
func Resolve(target string) *Provenance {
	repo, err := git.PlainOpenWithOptions(target, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}
	head, err := repo.Head()
	if err != nil {
		return nil
	}
	p := &Provenance{
		Commit: head.Hash().String(),
		Branch: head.Name().Short(),
	}

	wt, err := repo.Worktree()
	if err != nil {
		return p
	}
	st, err := wt.Status()
	if err != nil {
		return p
	}
	p.Dirty = !st.IsClean()
	return p
}
