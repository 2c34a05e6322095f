package gui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thiagokokada/gitbranches-go/internal/tree"

	. "modernc.org/tk9.0"
)

// reloadTreeAsync starts a full build. A newer reload supersedes an
// in-flight one: its context is cancelled first, and the new goroutine
// waits for the old one's teardown before loading, so the presentation
// is never touched by two builds at once. The displayed tree stays as
// is until a build completes.
func (a *Controller) reloadTreeAsync() {
	a.state.load.mu.Lock()
	if a.state.load.cancel != nil {
		a.state.load.cancel()
	}
	prev := a.state.load.done
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	a.state.load.cancel = cancel
	a.state.load.done = done
	a.state.load.mu.Unlock()

	go func() {
		defer close(done)
		if prev != nil {
			<-prev
		}
		forest, err := a.loadForest(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				slog.Debug("build superseded")
				return
			}
			slog.Error("load branches", slog.Any("error", err))
			PostEvent(func() {
				a.setStatus(fmt.Sprintf("Error: %v", err))
			}, false)
			return
		}
		if ctx.Err() != nil {
			return
		}
		PostEvent(func() {
			a.applyForest(forest)
		}, false)
	}()
}

func (a *Controller) loadForest(ctx context.Context) (*tree.Forest, error) {
	refs, err := a.svc.ListReferences()
	if err != nil {
		return nil, err
	}
	remotes, err := a.svc.ListRemotes()
	if err != nil {
		return nil, err
	}
	return tree.Build(ctx, tree.FilterRefs(refs, remotes), remotes)
}

func (a *Controller) applyForest(f *tree.Forest) {
	a.state.forest = f
	a.state.branchPaths = f.BranchPaths()
	if a.ui.presenter != nil {
		f.Present(a.ui.presenter)
		a.ui.presenter.clearSelection()
	}
	a.setStatus(a.statusSummary())
	slog.Debug("branch paths updated", slog.Int("count", len(a.state.branchPaths)))
}

func (a *Controller) cancelLoad() {
	a.state.load.mu.Lock()
	defer a.state.load.mu.Unlock()
	if a.state.load.cancel != nil {
		a.state.load.cancel()
		a.state.load.cancel = nil
	}
}
