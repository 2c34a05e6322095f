//go:build !gitcli

package git

import (
	"fmt"
	"path/filepath"

	gitlib "github.com/go-git/go-git/v5"
)

func Open(repoPath string) (*Service, error) {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	repo, err := gitlib.PlainOpenWithOptions(abs, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return &Service{repo: repoState{path: abs, Repository: repo}}, nil
}
