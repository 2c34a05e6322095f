package tree

import (
	"fmt"
	"slices"
)

// The mutation operations below keep the forest and its presenter in
// step without a rebuild. Each one validates fully before touching
// either side, so a failed call leaves no observable change.

// AddRemoteGroup appends a new root group for remote to the forest and
// the presenter. Fails with ErrDuplicateRemote when a root with that
// path already exists.
func (f *Forest) AddRemoteGroup(p Presenter, remote string) (*Group, error) {
	if remote == "" {
		return nil, fmt.Errorf("%w: empty remote name", ErrMalformedPath)
	}
	if _, ok := f.Root(remote); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRemote, remote)
	}
	g := newGroup(remote, remote, true)
	f.roots = append(f.roots, g)
	p.Insert("", g.ID(), g.Name())
	return g, nil
}

// RemoveRemoteGroup detaches the root group for remote, with its whole
// subtree, from the forest and the presenter. Removing an absent remote
// is a no-op; the triggering event may race with current state. The
// return value reports whether anything was removed.
func (f *Forest) RemoveRemoteGroup(p Presenter, remote string) bool {
	idx := f.rootIndex(remote)
	if idx < 0 {
		return false
	}
	n := f.roots[idx]
	f.roots = slices.Delete(f.roots, idx, idx+1)
	p.Remove(n.ID())
	return true
}

// RenameRemoteGroup renames the root group oldName to newName in
// place: the group keeps its children and its presentation item, only
// its own name, full path and label change. Descendant leaves keep the
// full paths they were built with, still referencing oldName. Fails
// with ErrRemoteNotFound when oldName has no root group, and with
// ErrDuplicateRemote when newName already has one.
func (f *Forest) RenameRemoteGroup(p Presenter, oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("%w: empty remote name", ErrMalformedPath)
	}
	g, ok := f.Root(oldName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRemoteNotFound, oldName)
	}
	if _, taken := f.Root(newName); taken && newName != oldName {
		return fmt.Errorf("%w: %s", ErrDuplicateRemote, newName)
	}
	g.rename(newName)
	p.SetText(g.ID(), newName)
	return nil
}
