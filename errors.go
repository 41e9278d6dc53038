//go:build windows

package nwg

import "errors"

var (
	// ErrSystemClassCreation means the OS refused to register a window
	// class, or the module handle could not be obtained.
	ErrSystemClassCreation = errors.New("system class creation failed")

	// ErrWindowCreation means CreateWindowEx failed, e.g. because of an
	// invalid parent handle or resource exhaustion.
	ErrWindowCreation = errors.New("window creation failed")

	// ErrKeyExists is returned when registering an identifier that is
	// already live in the same UI tree.
	ErrKeyExists = errors.New("identifier is already registered")

	// ErrHandleExists is returned when a handle is already registered
	// under a different identifier of the same UI tree.
	ErrHandleExists = errors.New("handle is already registered")

	// ErrKeyNotFound is returned by lookups for identifiers that were
	// never registered or have been removed. This usually indicates a
	// use-after-teardown bug, it is never silently defaulted.
	ErrKeyNotFound = errors.New("identifier is not registered")

	// ErrEnumerating is returned by Insert and Remove while a child
	// enumeration is walking the tree.
	ErrEnumerating = errors.New("registry is locked during child enumeration")

	// ErrNoHandleData is returned when no data is attached to a handle.
	ErrNoHandleData = errors.New("no data attached to handle")

	// ErrWrongDataType is returned when data is attached to a handle but
	// has a different type than the one requested.
	ErrWrongDataType = errors.New("attached data has a different type")
)

// BadParentError is returned by WindowOf when the identifier resolves to a
// handle that is not a window, e.g. when a font is passed as the parent of
// a control. Context is supplied by the call site to localize the bug.
type BadParentError struct {
	Context string
}

func (e *BadParentError) Error() string {
	return "nwg: bad parent: " + e.Context
}

// BadResourceError is returned by FontOf when the identifier resolves to a
// handle of the wrong kind. Context is supplied by the call site.
type BadResourceError struct {
	Context string
}

func (e *BadResourceError) Error() string {
	return "nwg: bad resource: " + e.Context
}
