package tree

import "strings"

const pathSep = "/"

// SplitRemote splits a full reference name on the first "/" into the
// remote candidate and the branch remainder. ok is false when the name
// has no separator and therefore cannot be a remote branch path.
func SplitRemote(name string) (remote, branch string, ok bool) {
	remote, branch, ok = strings.Cut(name, pathSep)
	if !ok {
		return "", "", false
	}
	return remote, branch, true
}

// Segments splits a full reference name into its path components.
func Segments(name string) []string {
	return strings.Split(name, pathSep)
}

// Join is the inverse of Segments.
func Join(segments ...string) string {
	return strings.Join(segments, pathSep)
}
