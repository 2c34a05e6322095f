package gui

import (
	"fmt"

	. "modernc.org/tk9.0"
)

const remoteRootTag = "remoteRoot"

func (a *Controller) buildUI() {
	GridRowConfigure(App, 1, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))

	toolbar := App.TFrame()
	Grid(toolbar, Row(0), Column(0), Sticky(WE), Padx("4p"), Pady("4p"))
	a.state.watch.button = toolbar.TButton(Txt("Reload"), Command(a.onReloadButton))
	Grid(a.state.watch.button, Row(0), Column(0), Sticky(W))

	listArea := App.TFrame()
	Grid(listArea, Row(1), Column(0), Sticky(NEWS), Padx("4p"), Pady("4p"))
	GridRowConfigure(listArea.Window, 0, Weight(1))
	GridColumnConfigure(listArea.Window, 0, Weight(1))

	treeScroll := listArea.TScrollbar()
	a.ui.tree = listArea.TTreeview(
		Show("tree"),
		Selectmode("browse"),
		Height(24),
		Yscrollcommand(func(e *Event) {
			e.ScrollSet(treeScroll)
		}),
	)
	if a.theme.palette.RemoteRootRow != "" {
		a.ui.tree.TagConfigure(remoteRootTag, Background(a.theme.palette.RemoteRootRow))
	}
	Grid(a.ui.tree, Row(0), Column(0), Sticky(NEWS))
	Grid(treeScroll, Row(0), Column(1), Sticky(NS))
	treeScroll.Configure(Command(func(e *Event) { e.Yview(a.ui.tree) }))

	Bind(a.ui.tree, "<<TreeviewSelect>>", Command(a.onTreeSelectionChanged))

	a.ui.status = App.TLabel(Anchor(W), Relief(SUNKEN), Padding("4p"))
	Grid(a.ui.status, Row(2), Column(0), Sticky(WE))

	a.ui.presenter = &treePresenter{widget: a.ui.tree, remoteRootTag: remoteRootTag}
}

func (a *Controller) setStatus(text string) {
	if a.ui.status == nil {
		return
	}
	a.ui.status.Configure(Txt(text))
}

func (a *Controller) statusSummary() string {
	branches := len(a.state.branchPaths)
	remotes := 0
	if a.state.forest != nil {
		remotes = len(a.state.forest.Roots())
	}
	return fmt.Sprintf("%d branches in %d remotes: %s", branches, remotes, a.repo.path)
}

func (a *Controller) onTreeSelectionChanged() {
	if a.ui.tree == nil || a.state.forest == nil {
		return
	}
	sel := a.ui.tree.Selection("")
	if len(sel) == 0 {
		return
	}
	if n := a.state.forest.NodeByID(sel[0]); n != nil {
		a.setStatus(n.FullPath())
	}
}
