package git

// Ref is one repository reference in short form: main, origin/main,
// v1.0. Remote HEAD pointers (origin/HEAD) are filtered out by the
// backends.
type Ref struct {
	Name     string
	IsRemote bool
	IsTag    bool
}
