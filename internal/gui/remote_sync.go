package gui

import (
	"log/slog"

	. "modernc.org/tk9.0"
)

// remoteChange is the difference between the forest's root groups and
// the remotes currently configured in the repository.
type remoteChange struct {
	added   []string
	removed []string
}

func (c remoteChange) isZero() bool {
	return len(c.added) == 0 && len(c.removed) == 0
}

// rename interprets exactly one removal plus exactly one addition as a
// remote rename, which is what `git remote rename` produces.
func (c remoteChange) rename() (oldName, newName string, ok bool) {
	if len(c.added) == 1 && len(c.removed) == 1 {
		return c.removed[0], c.added[0], true
	}
	return "", "", false
}

func classifyRemoteChange(current, updated []string) remoteChange {
	have := make(map[string]struct{}, len(current))
	for _, name := range current {
		have[name] = struct{}{}
	}
	want := make(map[string]struct{}, len(updated))
	for _, name := range updated {
		want[name] = struct{}{}
	}
	var change remoteChange
	for _, name := range current {
		if _, ok := want[name]; !ok {
			change.removed = append(change.removed, name)
		}
	}
	for _, name := range updated {
		if _, ok := have[name]; !ok {
			change.added = append(change.added, name)
		}
	}
	return change
}

// syncRemotesAsync reconciles the forest with the repository's remote
// configuration through targeted mutations instead of a full rebuild.
func (a *Controller) syncRemotesAsync() {
	go func() {
		remotes, err := a.svc.ListRemotes()
		if err != nil {
			slog.Error("list remotes", slog.Any("error", err))
			return
		}
		PostEvent(func() {
			a.applyRemoteChange(remotes)
		}, false)
	}()
}

func (a *Controller) applyRemoteChange(remotes []string) {
	f := a.state.forest
	if f == nil || a.ui.presenter == nil {
		a.reloadTreeAsync()
		return
	}
	change := classifyRemoteChange(f.RemoteNames(), remotes)
	if change.isZero() {
		return
	}
	if oldName, newName, ok := change.rename(); ok {
		if err := a.remoteRenamed(oldName, newName); err != nil {
			slog.Error("rename remote group",
				slog.String("from", oldName),
				slog.String("to", newName),
				slog.Any("error", err),
			)
			a.reloadTreeAsync()
			return
		}
		a.setStatus(a.statusSummary())
		return
	}
	for _, name := range change.removed {
		a.remoteRemoved(name)
	}
	for _, name := range change.added {
		if err := a.remoteAdded(name); err != nil {
			slog.Error("add remote group", slog.String("remote", name), slog.Any("error", err))
			a.reloadTreeAsync()
			return
		}
	}
	a.setStatus(a.statusSummary())
}

func (a *Controller) remoteAdded(name string) error {
	_, err := a.state.forest.AddRemoteGroup(a.ui.presenter, name)
	return err
}

func (a *Controller) remoteRemoved(name string) {
	if !a.state.forest.RemoveRemoteGroup(a.ui.presenter, name) {
		slog.Debug("remove remote group: already absent", slog.String("remote", name))
	}
}

func (a *Controller) remoteRenamed(oldName, newName string) error {
	return a.state.forest.RenameRemoteGroup(a.ui.presenter, oldName, newName)
}
