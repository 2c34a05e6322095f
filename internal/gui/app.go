package gui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/thiagokokada/gitbranches-go/internal/git"

	. "modernc.org/tk9.0"
	_ "modernc.org/tk9.0/themes/azure" // load theme
)

// RunConfig describes the parameters that control the GUI runtime.
type RunConfig struct {
	RepoPath        string
	ThemePreference ThemePreference
	AutoReload      bool
	Verbose         bool
}

func Run(cfg RunConfig) error {
	if cfg.RepoPath == "" {
		cfg.RepoPath = "."
	}
	if err := InitializeExtension("eval"); err != nil && err != AlreadyInitialized {
		return fmt.Errorf("init eval extension: %v", err)
	}
	svc, err := git.Open(cfg.RepoPath)
	if err != nil {
		return err
	}
	pref := cfg.ThemePreference
	if pref < ThemeAuto || pref > ThemeDark {
		pref = ThemeAuto
	}
	app := &Controller{
		svc: svc,
		cfg: controllerConfig{
			autoReloadRequested: cfg.AutoReload,
			verbose:             cfg.Verbose,
		},
		repo: controllerRepo{
			path: svc.RepoPath(),
		},
		theme: controllerTheme{
			pref: pref,
		},
	}
	return app.run()
}

func (a *Controller) run() error {
	defer a.shutdown()
	a.theme.palette = paletteForPreference(a.theme.pref)
	if a.theme.palette.ThemeName != "" {
		err := ActivateTheme(a.theme.palette.ThemeName)
		if err != nil {
			slog.Error(
				"activate theme",
				slog.String("theme", a.theme.palette.ThemeName),
				slog.Any("error", err),
			)
		}
	}
	level := slog.LevelInfo
	if a.cfg.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	a.buildUI()
	a.initAutoReload(a.cfg.autoReloadRequested)
	a.setStatus("Loading branches...")
	a.reloadTreeAsync()
	App.WmTitle("gitbranches-go")
	App.SetResizable(true, true)
	App.Center().Wait()
	return nil
}

func (a *Controller) shutdown() {
	a.disableAutoReload()
	a.cancelLoad()
}

// contextChanged drops the forest and clears the selection without
// triggering a rebuild, for when the underlying repository goes away or
// is replaced.
func (a *Controller) contextChanged() {
	a.state.forest = nil
	a.state.branchPaths = nil
	if a.ui.presenter != nil {
		a.ui.presenter.clearSelection()
		a.ui.presenter.Clear()
	}
	a.setStatus("Repository changed")
}
