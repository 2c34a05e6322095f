package gui

import (
	"context"
	"sync"

	"github.com/thiagokokada/gitbranches-go/internal/git"
	"github.com/thiagokokada/gitbranches-go/internal/tree"

	. "modernc.org/tk9.0"
)

type Controller struct {
	svc *git.Service

	cfg   controllerConfig
	repo  controllerRepo
	theme controllerTheme

	ui appWidgets

	state controllerState
}

type controllerConfig struct {
	autoReloadRequested bool
	verbose             bool
}

type controllerRepo struct {
	path string
}

type controllerTheme struct {
	pref    ThemePreference
	palette colorPalette
}

type appWidgets struct {
	tree      *TTreeviewWidget
	status    *TLabelWidget
	presenter *treePresenter
}

type controllerState struct {
	forest      *tree.Forest
	branchPaths []string

	load  loadState
	watch autoReloadState
}

// loadState tracks the in-flight full build. A new load cancels the
// previous one and waits on its done channel before touching shared
// state, so two builds never interleave.
type loadState struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}
