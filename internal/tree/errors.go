package tree

import "errors"

var (
	// ErrMalformedPath reports a reference path that cannot form a
	// remote branch node: empty, or without a "/" separator. Callers
	// are expected to filter these out before building.
	ErrMalformedPath = errors.New("malformed reference path")

	// ErrDuplicateRemote reports an AddRemoteGroup for a remote that
	// already has a root group.
	ErrDuplicateRemote = errors.New("remote group already exists")

	// ErrRemoteNotFound reports a RenameRemoteGroup whose target root
	// group does not exist.
	ErrRemoteNotFound = errors.New("remote group not found")
)
