package tree

// Node is one entry of the branches forest: either a Group (shared path
// prefix, possibly a remote root) or a Leaf (one concrete remote
// branch). Children are ordered and owned by their parent; the parent
// pointer is a non-owning back reference.
type Node interface {
	// ID is the stable presentation handle for this node. It equals
	// the full path the node was created with and never changes, even
	// when a remote group is renamed.
	ID() string
	// FullPath is the slash-joined path from the forest root to this
	// node, unique across the forest.
	FullPath() string
	// Name is the last path component, used as display text.
	Name() string
	Parent() Node
	Children() []Node

	base() *nodeBase
}

type nodeBase struct {
	id       string
	fullPath string
	name     string
	parent   Node
	children []Node
}

func (n *nodeBase) ID() string       { return n.id }
func (n *nodeBase) FullPath() string { return n.fullPath }
func (n *nodeBase) Name() string     { return n.name }
func (n *nodeBase) Parent() Node     { return n.parent }
func (n *nodeBase) Children() []Node { return n.children }
func (n *nodeBase) base() *nodeBase  { return n }

// Group is a node with no reference of its own: an intermediate path
// segment, or the root group of a remote when RemoteRoot is true.
type Group struct {
	nodeBase
	remoteRoot bool
}

// RemoteRoot reports whether this group represents a remote repository
// itself rather than an intermediate path segment. The decision is made
// once at creation time.
func (g *Group) RemoteRoot() bool { return g.remoteRoot }

func newGroup(fullPath, name string, remoteRoot bool) *Group {
	return &Group{
		nodeBase:   nodeBase{id: fullPath, fullPath: fullPath, name: name},
		remoteRoot: remoteRoot,
	}
}

// rename updates the group's own identity in place. Children keep
// their original full paths; only this node's name and path change.
func (g *Group) rename(newName string) {
	g.name = newName
	g.fullPath = newName
}

// Leaf is a node for one concrete remote branch.
type Leaf struct {
	nodeBase
	remote string
	branch string
}

// Remote is the remote name, the part of the full path before the
// first "/".
func (l *Leaf) Remote() string { return l.remote }

// Branch is the branch name on the remote, the part of the full path
// after the first "/".
func (l *Leaf) Branch() string { return l.branch }

func newLeaf(fullPath, name, remote, branch string) *Leaf {
	return &Leaf{
		nodeBase: nodeBase{id: fullPath, fullPath: fullPath, name: name},
		remote:   remote,
		branch:   branch,
	}
}

func attach(parent, child Node) {
	pb := parent.base()
	pb.children = append(pb.children, child)
	child.base().parent = parent
}

// Walk visits n and all its descendants depth first, children in
// order.
func Walk(n Node, fn func(Node)) {
	fn(n)
	for _, child := range n.Children() {
		Walk(child, fn)
	}
}
