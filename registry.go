//go:build windows

package nwg

import "github.com/gonutz/w32/v2"

// New returns an empty UI tree. Identifiers are user-chosen keys that
// stand in for OS handles in application code, they must be unique within
// one tree.
func New[ID comparable]() *Ui[ID] {
	return &Ui[ID]{
		handles:      make(map[ID]AnyHandle),
		ids:          make(map[AnyHandle]ID),
		handlers:     make(map[binding[ID]]MessageHandler),
		menuCommands: make(map[uint16]ID),
	}
}

// Ui owns the bidirectional identifier/handle mapping for one UI tree.
// The mapping is a bijection at all times: no two identifiers share a
// handle and no handle is registered twice.
//
// A Ui and everything attached to it must only be used from the thread
// that runs the tree's message loop.
type Ui[ID comparable] struct {
	handles      map[ID]AnyHandle
	ids          map[AnyHandle]ID
	handlers     map[binding[ID]]MessageHandler
	menuCommands map[uint16]ID
	lastCommand  uint16
	walking      bool
	onError      func(error)
	errs         []error
}

type binding[ID comparable] struct {
	id  ID
	msg uint32
}

// Insert registers a new identifier/handle pair. Registering an identifier
// or a handle twice is an error and leaves the tree unchanged.
func (ui *Ui[ID]) Insert(id ID, handle AnyHandle) error {
	if ui.walking {
		return ErrEnumerating
	}
	if _, ok := ui.handles[id]; ok {
		return ErrKeyExists
	}
	if _, ok := ui.ids[handle]; ok {
		return ErrHandleExists
	}
	ui.handles[id] = handle
	ui.ids[handle] = id
	if window, ok := handle.Hwnd(); ok {
		setMessageRouter(window, ui)
	}
	if _, command, ok := handle.MenuItem(); ok {
		ui.menuCommands[uint16(command)] = id
	}
	return nil
}

// HandleOf resolves an identifier to its handle.
func (ui *Ui[ID]) HandleOf(id ID) (AnyHandle, error) {
	handle, ok := ui.handles[id]
	if !ok {
		return AnyHandle{}, ErrKeyNotFound
	}
	return handle, nil
}

// IDOf is the reverse lookup: it reports whether the handle belongs to
// this tree and under which identifier. Message dispatch and child
// enumeration call this once per window, it does not scan.
func (ui *Ui[ID]) IDOf(handle AnyHandle) (ID, bool) {
	id, ok := ui.ids[handle]
	return id, ok
}

// Remove deregisters the identifier and returns its handle. The underlying
// OS resource is not closed, releasing it is up to the caller. Handlers
// bound to the identifier are dropped.
func (ui *Ui[ID]) Remove(id ID) (AnyHandle, error) {
	if ui.walking {
		return AnyHandle{}, ErrEnumerating
	}
	handle, ok := ui.handles[id]
	if !ok {
		return AnyHandle{}, ErrKeyNotFound
	}
	delete(ui.handles, id)
	delete(ui.ids, handle)
	for b := range ui.handlers {
		if b.id == id {
			delete(ui.handlers, b)
		}
	}
	if window, ok := handle.Hwnd(); ok {
		clearMessageRouter(window)
	}
	if _, command, ok := handle.MenuItem(); ok {
		delete(ui.menuCommands, uint16(command))
	}
	return handle, nil
}

// WindowOf narrows the identifier's handle to a window. If the identifier
// resolves to a handle of another kind the returned BadParentError carries
// context to localize the bug.
func (ui *Ui[ID]) WindowOf(id ID, context string) (w32.HWND, error) {
	handle, err := ui.HandleOf(id)
	if err != nil {
		return 0, err
	}
	window, ok := handle.Hwnd()
	if !ok {
		return 0, &BadParentError{Context: context}
	}
	return window, nil
}

// FontOf narrows the identifier's handle to a font.
func (ui *Ui[ID]) FontOf(id ID, context string) (w32.HFONT, error) {
	handle, err := ui.HandleOf(id)
	if err != nil {
		return 0, err
	}
	font, ok := handle.Hfont()
	if !ok {
		return 0, &BadResourceError{Context: context}
	}
	return font, nil
}

// Close tears the tree down. Every handle still registered is destroyed
// along with its attached data, then both maps and all handler bindings
// are cleared. The Ui can be reused afterwards but all previous
// identifiers are gone.
func (ui *Ui[ID]) Close() {
	// Destroying a parent window destroys its children at the OS level
	// and their user data slot is unreadable afterwards. Release every
	// window's slot before the first DestroyWindow.
	for _, handle := range ui.handles {
		if window, ok := handle.Hwnd(); ok {
			dropWindowSlot(window)
		}
	}
	for id, handle := range ui.handles {
		destroyHandle(handle)
		delete(ui.handles, id)
		delete(ui.ids, handle)
	}
	clear(ui.handlers)
	clear(ui.menuCommands)
	ui.lastCommand = 0
}

func destroyHandle(handle AnyHandle) {
	switch handle.Kind() {
	case KindWindow:
		window, _ := handle.Hwnd()
		dropWindowSlot(window)
		w32.DestroyWindow(window)
	case KindFont:
		font, _ := handle.Hfont()
		w32.DeleteObject(w32.HGDIOBJ(font))
	case KindBrush:
		brush, _ := handle.Hbrush()
		w32.DeleteObject(w32.HGDIOBJ(brush))
	case KindMenu:
		menu, _ := handle.Hmenu()
		destroyMenu(menu)
	case KindMenuItem:
		// destroyed together with its owning menu
	}
}

func (ui *Ui[ID]) nextMenuCommand() uint16 {
	ui.lastCommand++
	return ui.lastCommand
}
