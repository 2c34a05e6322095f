//go:build !gitcli

package git

import (
	"slices"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// ListReferences returns every branch, remote branch and tag in short
// form. Remote HEAD pointers are skipped.
func (s *Service) ListReferences() ([]Ref, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iter, err := s.repo.References()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []Ref
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		isBranch := name.IsBranch()
		isRemote := name.IsRemote()
		isTag := name.IsTag()
		if !isBranch && !isRemote && !isTag {
			return nil
		}
		short := name.Short()
		if short == "" {
			return nil
		}
		if isRemote && strings.HasSuffix(short, "/HEAD") {
			return nil
		}
		out = append(out, Ref{Name: short, IsRemote: isRemote, IsTag: isTag})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListRemotes returns the configured remote names, sorted.
func (s *Service) ListRemotes() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remotes, err := s.repo.Remotes()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(remotes))
	for _, remote := range remotes {
		if cfg := remote.Config(); cfg != nil && cfg.Name != "" {
			names = append(names, cfg.Name)
		}
	}
	slices.Sort(names)
	return names, nil
}
