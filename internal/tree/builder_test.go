package tree

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/thiagokokada/gitbranches-go/internal/git"
)

func mustBuild(t *testing.T, paths, remotes []string) *Forest {
	t.Helper()
	f, err := Build(context.Background(), paths, remotes)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return f
}

func findNode(f *Forest, fullPath string) Node {
	var found Node
	for _, root := range f.Roots() {
		Walk(root, func(n Node) {
			if n.FullPath() == fullPath {
				found = n
			}
		})
	}
	return found
}

func TestBuildScenario(t *testing.T) {
	t.Parallel()

	f := mustBuild(t,
		[]string{"origin/main", "origin/feature/x", "upstream/main"},
		[]string{"origin", "upstream"},
	)

	want := "" +
		"origin\n" +
		"  feature\n" +
		"    x\n" +
		"  main\n" +
		"upstream\n" +
		"  main\n"
	requireRender(t, want, f.Render())

	for _, name := range []string{"origin", "upstream"} {
		root, ok := f.Root(name)
		if !ok {
			t.Fatalf("missing root %s", name)
		}
		if !root.RemoteRoot() {
			t.Fatalf("root %s should be a remote root", name)
		}
	}
	feature, ok := findNode(f, "origin/feature").(*Group)
	if !ok {
		t.Fatal("origin/feature should be a group")
	}
	if feature.RemoteRoot() {
		t.Fatal("origin/feature is not a remote root")
	}

	leaf, ok := findNode(f, "origin/feature/x").(*Leaf)
	if !ok {
		t.Fatal("origin/feature/x should be a leaf")
	}
	if got := Join(leaf.Remote(), leaf.Branch()); got != leaf.FullPath() {
		t.Fatalf("remote+branch = %q, full path = %q", got, leaf.FullPath())
	}
	if leaf.Parent() != Node(feature) {
		t.Fatal("leaf parent should be the feature group")
	}

	wantPaths := []string{"origin/feature/x", "origin/main", "upstream/main"}
	if !slices.Equal(f.BranchPaths(), wantPaths) {
		t.Fatalf("unexpected branch paths: got %v want %v", f.BranchPaths(), wantPaths)
	}
}

func TestBuildSortsSiblings(t *testing.T) {
	t.Parallel()

	f := mustBuild(t, []string{"origin/b", "origin/a"}, []string{"origin"})
	root, ok := f.Root("origin")
	if !ok {
		t.Fatal("missing origin root")
	}
	var names []string
	for _, child := range root.Children() {
		names = append(names, child.Name())
	}
	if !slices.Equal(names, []string{"a", "b"}) {
		t.Fatalf("unexpected child order: %v", names)
	}
}

func TestBuildIdempotent(t *testing.T) {
	t.Parallel()

	paths := []string{"origin/main", "origin/feature/x", "upstream/main"}
	remotes := []string{"origin", "upstream"}
	first := mustBuild(t, paths, remotes)
	second := mustBuild(t, paths, remotes)

	requireRender(t, first.Render(), second.Render())
	if !slices.Equal(first.BranchPaths(), second.BranchPaths()) {
		t.Fatalf("branch paths differ: %v vs %v", first.BranchPaths(), second.BranchPaths())
	}
}

func TestBuildDuplicatePathsCreateNothing(t *testing.T) {
	t.Parallel()

	f := mustBuild(t, []string{"origin/main", "origin/main"}, []string{"origin"})
	requireRender(t, "origin\n  main\n", f.Render())
	if len(f.BranchPaths()) != 1 {
		t.Fatalf("expected one branch path, got %v", f.BranchPaths())
	}
}

func TestBuildSharesPrefixes(t *testing.T) {
	t.Parallel()

	f := mustBuild(t,
		[]string{"origin/feature/a", "origin/feature/b", "origin/feature/deep/c"},
		[]string{"origin"},
	)
	groups := 0
	for _, root := range f.Roots() {
		Walk(root, func(n Node) {
			if _, ok := n.(*Group); ok {
				groups++
			}
		})
	}
	// origin, feature, deep: one group per distinct prefix
	if groups != 3 {
		t.Fatalf("expected 3 groups, got %d:\n%s", groups, f.Render())
	}
}

func TestBuildMalformedPath(t *testing.T) {
	t.Parallel()

	for _, paths := range [][]string{{"main"}, {""}} {
		_, err := Build(context.Background(), paths, []string{"origin"})
		if !errors.Is(err, ErrMalformedPath) {
			t.Fatalf("Build(%v) error = %v, want ErrMalformedPath", paths, err)
		}
	}
}

func TestBuildCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f, err := Build(ctx, []string{"origin/main"}, []string{"origin"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Build error = %v, want context.Canceled", err)
	}
	if f != nil {
		t.Fatal("cancelled build should not return a forest")
	}
}

func TestBuildEmptyInput(t *testing.T) {
	t.Parallel()

	f := mustBuild(t, nil, nil)
	if len(f.Roots()) != 0 || len(f.BranchPaths()) != 0 {
		t.Fatalf("expected empty forest, got %q", f.Render())
	}
}

func TestFilterRefs(t *testing.T) {
	t.Parallel()

	refs := []git.Ref{
		{Name: "main"},
		{Name: "origin/main", IsRemote: true},
		{Name: "origin/feature/x", IsRemote: true},
		{Name: "fork/main", IsRemote: true},
		{Name: "v1.0", IsTag: true},
		{Name: "origin", IsRemote: true},
	}
	got := FilterRefs(refs, []string{"origin", "upstream"})
	want := []string{"origin/main", "origin/feature/x"}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected filtered paths: got %v want %v", got, want)
	}
}
