package tree

// Presenter mirrors the forest into an external tree view. Items are
// keyed by node ID; removing an item removes its whole subtree, as a
// treeview delete does. Implementations are not expected to be safe for
// concurrent use; the forest owner serializes all calls.
type Presenter interface {
	// Clear removes every item.
	Clear()
	// Insert adds an item under parentID, appended after its current
	// siblings. parentID is empty for root items.
	Insert(parentID, id, text string)
	// Remove deletes the item and all its descendants.
	Remove(id string)
	// SetText relabels an existing item.
	SetText(id, text string)
}

// Present replaces the presenter contents with the current forest, one
// item per node, restoring the 1:1 pairing after a full build.
func (f *Forest) Present(p Presenter) {
	p.Clear()
	for _, root := range f.roots {
		presentNode(p, "", root)
	}
}

func presentNode(p Presenter, parentID string, n Node) {
	p.Insert(parentID, n.ID(), n.Name())
	for _, child := range n.Children() {
		presentNode(p, n.ID(), child)
	}
}
