package gui

import (
	"slices"
	"testing"
)

func TestClassifyRemoteChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current []string
		updated []string
		added   []string
		removed []string
	}{
		{
			name:    "no change",
			current: []string{"origin", "upstream"},
			updated: []string{"origin", "upstream"},
		},
		{
			name:    "remote added",
			current: []string{"origin"},
			updated: []string{"fork", "origin"},
			added:   []string{"fork"},
		},
		{
			name:    "remote removed",
			current: []string{"origin", "upstream"},
			updated: []string{"origin"},
			removed: []string{"upstream"},
		},
		{
			name:    "rename pair",
			current: []string{"origin", "upstream"},
			updated: []string{"mirror", "origin"},
			added:   []string{"mirror"},
			removed: []string{"upstream"},
		},
		{
			name:    "everything gone",
			current: []string{"origin"},
			updated: nil,
			removed: []string{"origin"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			change := classifyRemoteChange(tc.current, tc.updated)
			if !slices.Equal(change.added, tc.added) {
				t.Fatalf("added = %v, want %v", change.added, tc.added)
			}
			if !slices.Equal(change.removed, tc.removed) {
				t.Fatalf("removed = %v, want %v", change.removed, tc.removed)
			}
		})
	}
}

func TestRemoteChangeRename(t *testing.T) {
	t.Parallel()

	change := classifyRemoteChange([]string{"origin"}, []string{"mirror"})
	oldName, newName, ok := change.rename()
	if !ok || oldName != "origin" || newName != "mirror" {
		t.Fatalf("rename() = (%q, %q, %v), want (origin, mirror, true)", oldName, newName, ok)
	}

	change = classifyRemoteChange([]string{"origin"}, []string{"a", "b"})
	if _, _, ok := change.rename(); ok {
		t.Fatal("two additions should not classify as a rename")
	}

	change = classifyRemoteChange([]string{"origin"}, []string{"origin"})
	if _, _, ok := change.rename(); ok {
		t.Fatal("no change should not classify as a rename")
	}
}
