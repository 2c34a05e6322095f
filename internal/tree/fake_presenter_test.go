package tree

import (
	"slices"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// fakePresenter records the item tree a real treeview would hold, so
// tests can check the forest and presentation never diverge.
type fakePresenter struct {
	items map[string]*fakeItem
	order map[string][]string // parent id -> child ids
}

type fakeItem struct {
	parent string
	text   string
}

func newFakePresenter() *fakePresenter {
	p := &fakePresenter{}
	p.Clear()
	return p
}

func (p *fakePresenter) Clear() {
	p.items = map[string]*fakeItem{}
	p.order = map[string][]string{}
}

func (p *fakePresenter) Insert(parentID, id, text string) {
	p.items[id] = &fakeItem{parent: parentID, text: text}
	p.order[parentID] = append(p.order[parentID], id)
}

func (p *fakePresenter) Remove(id string) {
	item, ok := p.items[id]
	if !ok {
		return
	}
	for _, child := range slices.Clone(p.order[id]) {
		p.Remove(child)
	}
	delete(p.order, id)
	siblings := p.order[item.parent]
	if idx := slices.Index(siblings, id); idx >= 0 {
		p.order[item.parent] = slices.Delete(siblings, idx, idx+1)
	}
	delete(p.items, id)
}

func (p *fakePresenter) SetText(id, text string) {
	if item, ok := p.items[id]; ok {
		item.text = text
	}
}

// render prints the recorded item tree in the same indented format as
// Forest.Render, so the two can be compared directly.
func (p *fakePresenter) render() string {
	var b strings.Builder
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		for _, child := range p.order[id] {
			for range depth {
				b.WriteString("  ")
			}
			b.WriteString(p.items[child].text)
			b.WriteByte('\n')
			walk(child, depth+1)
		}
	}
	walk("", 0)
	return b.String()
}

func requireRender(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("diff render: %v", err)
	}
	t.Fatalf("unexpected tree:\n%s", diff)
}
