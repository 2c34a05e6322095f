package tree

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/thiagokokada/gitbranches-go/internal/git"
)

// Forest is an ordered sequence of independent remote root groups plus
// the flat list of branch paths the last build produced.
type Forest struct {
	roots       []Node
	branchPaths []string
}

// Roots returns the root nodes in first-seen (lexicographic at build
// time) order.
func (f *Forest) Roots() []Node { return f.roots }

// BranchPaths returns the fully qualified leaf paths produced by the
// build, in tree order. Incremental mutations do not update it.
func (f *Forest) BranchPaths() []string { return f.branchPaths }

// RemoteNames returns the full paths of the current root groups, in
// forest order.
func (f *Forest) RemoteNames() []string {
	names := make([]string, 0, len(f.roots))
	for _, n := range f.roots {
		names = append(names, n.FullPath())
	}
	return names
}

// Root returns the root group whose full path equals name.
func (f *Forest) Root(name string) (*Group, bool) {
	if idx := f.rootIndex(name); idx >= 0 {
		return f.roots[idx].(*Group), true
	}
	return nil, false
}

// NodeByID returns the node paired with the presentation item id, or
// nil when no such node exists.
func (f *Forest) NodeByID(id string) Node {
	var found Node
	for _, root := range f.roots {
		Walk(root, func(n Node) {
			if n.ID() == id {
				found = n
			}
		})
	}
	return found
}

func (f *Forest) rootIndex(name string) int {
	for i, n := range f.roots {
		if n.FullPath() == name {
			return i
		}
	}
	return -1
}

// FilterRefs selects the reference names that belong in the branches
// forest: remote-tracking, not tags, with a first path segment naming a
// known remote. The result is unsorted; Build sorts it.
func FilterRefs(refs []git.Ref, remotes []string) []string {
	known := make(map[string]struct{}, len(remotes))
	for _, r := range remotes {
		known[r] = struct{}{}
	}
	var paths []string
	for _, ref := range refs {
		if !ref.IsRemote || ref.IsTag {
			continue
		}
		remote, _, ok := SplitRemote(ref.Name)
		if !ok {
			continue
		}
		if _, ok := known[remote]; !ok {
			continue
		}
		paths = append(paths, ref.Name)
	}
	return paths
}

// Build constructs a forest from pre-filtered reference paths. Paths
// are sorted lexicographically before segmentation, so sibling order is
// deterministic and duplicate inputs are idempotent. ctx is checked
// whenever the walk reaches a new top-level group; a cancelled build
// returns ctx.Err() and no forest.
//
// Every path must contain at least one "/"; anything else is an
// ErrMalformedPath, not a silent skip.
func Build(ctx context.Context, paths []string, remotes []string) (*Forest, error) {
	known := make(map[string]struct{}, len(remotes))
	for _, r := range remotes {
		known[r] = struct{}{}
	}

	sorted := slices.Clone(paths)
	slices.Sort(sorted)

	f := &Forest{}
	reg := newRegistry()
	lastTop := ""
	for _, path := range sorted {
		top, _, ok := SplitRemote(path)
		if path == "" || !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPath, path)
		}
		if top != lastTop || lastTop == "" {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			lastTop = top
		}
		if err := f.insert(reg, known, path); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Forest) insert(reg *registry, known map[string]struct{}, path string) error {
	segments := Segments(path)
	var parent Node
	for i, segment := range segments {
		if segment == "" {
			return fmt.Errorf("%w: %q", ErrMalformedPath, path)
		}
		prefix := Join(segments[:i+1]...)
		last := i == len(segments)-1
		n, created := reg.getOrCreate(prefix, func() Node {
			if last {
				remote, branch, _ := SplitRemote(path)
				return newLeaf(prefix, segment, remote, branch)
			}
			_, remoteRoot := known[prefix]
			return newGroup(prefix, segment, remoteRoot)
		})
		if created {
			if parent == nil {
				f.roots = append(f.roots, n)
			} else {
				attach(parent, n)
			}
			if last {
				f.branchPaths = append(f.branchPaths, path)
			}
		}
		parent = n
	}
	return nil
}

// Render writes the forest as an indented text tree, one node per
// line.
func (f *Forest) Render() string {
	var b strings.Builder
	for _, root := range f.roots {
		renderNode(&b, root, 0)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n Node, depth int) {
	for range depth {
		b.WriteString("  ")
	}
	b.WriteString(n.Name())
	b.WriteByte('\n')
	for _, child := range n.Children() {
		renderNode(b, child, depth+1)
	}
}
