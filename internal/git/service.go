package git

import (
	"sync"

	gitlib "github.com/go-git/go-git/v5"
)

// Service exposes the repository data the branches tree is built from.
// The default backend uses go-git; building with the gitcli tag shells
// out to the git executable instead.
type Service struct {
	// mu serializes backend access; go-git reference iterators are not
	// safe for concurrent use.
	mu sync.Mutex

	repo repoState
}

type repoState struct {
	*gitlib.Repository
	path string
}

func (s *Service) RepoPath() string {
	return s.repo.path
}
