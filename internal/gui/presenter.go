package gui

import (
	"log/slog"

	"github.com/thiagokokada/gitbranches-go/internal/gui/tkutil"

	. "modernc.org/tk9.0"
)

// treePresenter is the treeview side of the forest pairing: one item
// per node, keyed by the node's stable id. Implements tree.Presenter.
type treePresenter struct {
	widget        *TTreeviewWidget
	remoteRootTag string
}

func (p *treePresenter) Clear() {
	if p.widget == nil {
		return
	}
	if _, err := tkutil.Eval("%s delete [%s children {}]", p.widget, p.widget); err != nil {
		slog.Error("tree clear", slog.Any("error", err))
	}
}

func (p *treePresenter) Insert(parentID, id, text string) {
	if p.widget == nil {
		return
	}
	if parentID == "" && p.remoteRootTag != "" {
		p.widget.Insert("", "end", Id(id), Txt(text), Tags(p.remoteRootTag))
		return
	}
	p.widget.Insert(parentID, "end", Id(id), Txt(text))
}

func (p *treePresenter) Remove(id string) {
	if p.widget == nil {
		return
	}
	// treeview delete drops the whole subtree
	p.widget.Delete(id)
}

func (p *treePresenter) SetText(id, text string) {
	if p.widget == nil {
		return
	}
	if _, err := tkutil.Eval("%s item %s -text %s", p.widget, tclBrace(id), tclBrace(text)); err != nil {
		slog.Error("tree relabel", slog.String("id", id), slog.Any("error", err))
	}
}

func (p *treePresenter) clearSelection() {
	if p.widget == nil {
		return
	}
	tkutil.EvalOrEmpty("%s selection set {}", p.widget)
}
