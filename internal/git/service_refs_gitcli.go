//go:build gitcli

package git

import (
	"fmt"
	"slices"
	"strings"
)

// ListReferences returns every branch, remote branch and tag in short
// form. Remote HEAD pointers are skipped.
func (s *Service) ListReferences() ([]Ref, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.runGitCommand(
		[]string{
			"--no-pager",
			"show-ref",
		},
		true,
		"git show-ref",
	)
	if err != nil {
		return nil, err
	}
	return parseRefsFromShowRef(out)
}

func parseRefsFromShowRef(out string) ([]Ref, error) {
	var refs []Ref
	for _, rawLine := range strings.Split(out, "\n") {
		line := strings.TrimRight(rawLine, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, fmt.Errorf("unexpected show-ref output line: %q", rawLine)
		}
		refName := strings.TrimSpace(parts[1])
		if refName == "" {
			return nil, fmt.Errorf("unexpected show-ref output line: %q", rawLine)
		}
		if strings.HasSuffix(refName, "^{}") {
			// peeled duplicate of an annotated tag entry
			continue
		}

		isTag := strings.HasPrefix(refName, "refs/tags/")
		isBranch := strings.HasPrefix(refName, "refs/heads/")
		isRemote := strings.HasPrefix(refName, "refs/remotes/")
		if !isTag && !isBranch && !isRemote {
			continue
		}

		short := refName
		switch {
		case isTag:
			short = strings.TrimPrefix(refName, "refs/tags/")
		case isBranch:
			short = strings.TrimPrefix(refName, "refs/heads/")
		case isRemote:
			short = strings.TrimPrefix(refName, "refs/remotes/")
		}
		if short == "" {
			continue
		}
		if isRemote && strings.HasSuffix(short, "/HEAD") {
			continue
		}
		refs = append(refs, Ref{Name: short, IsRemote: isRemote, IsTag: isTag})
	}
	return refs, nil
}

// ListRemotes returns the configured remote names, sorted.
func (s *Service) ListRemotes() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.runGitCommand([]string{"remote"}, false, "git remote")
	if err != nil {
		return nil, err
	}
	return parseRemoteNames(out), nil
}

func parseRemoteNames(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
