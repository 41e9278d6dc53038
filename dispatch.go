//go:build windows

package nwg

import (
	"fmt"
	"syscall"

	"github.com/gonutz/w32/v2"
)

// MessageHandler is a callback bound to one (identifier, message) pair,
// see Ui.Bind.
type MessageHandler func(wParam, lParam uintptr)

// messageRouter lets the shared window procedure hand a message to the
// tree that owns the window without knowing the tree's identifier type.
type messageRouter interface {
	routeMessage(window w32.HWND, msg uint32, wParam, lParam uintptr) (result uintptr, handled bool)
}

var dispatchProc uintptr

// DispatchProc returns the window procedure that routes messages through
// the handle registry. Pass it as SysclassParams.WndProc. It is shared by
// every window of every tree and safely ignores windows it does not know.
func DispatchProc() uintptr {
	if dispatchProc == 0 {
		dispatchProc = syscall.NewCallback(dispatchMessage)
	}
	return dispatchProc
}

func dispatchMessage(window w32.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	token := int(w32.GetWindowLongPtr(window, w32.GWL_USERDATA))
	if s := handleSlots.get(token); s != nil && s.router != nil {
		if result, handled := s.router.routeMessage(window, msg, wParam, lParam); handled {
			return result
		}
	}
	// Unknown window, or a message before registration completed or after
	// teardown: let the window behave like any plain window.
	return w32.DefWindowProc(window, msg, wParam, lParam)
}

// Bind registers f to be called when the control registered under id
// receives msg. A nil f removes the binding. Binding the same pair again
// replaces the handler.
func (ui *Ui[ID]) Bind(id ID, msg uint32, f MessageHandler) {
	if f == nil {
		delete(ui.handlers, binding[ID]{id: id, msg: msg})
		return
	}
	ui.handlers[binding[ID]{id: id, msg: msg}] = f
}

// Unbind removes the handler for the (id, msg) pair if there is one.
func (ui *Ui[ID]) Unbind(id ID, msg uint32) {
	delete(ui.handlers, binding[ID]{id: id, msg: msg})
}

func (ui *Ui[ID]) routeMessage(window w32.HWND, msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	if msg == w32.WM_COMMAND {
		// Commands arrive at the parent. Menu clicks (lParam == 0, high
		// word 0) carry the command id, control notifications carry the
		// child window in lParam.
		high := (wParam >> 16) & 0xFFFF
		if lParam == 0 && high == 0 {
			if id, ok := ui.menuCommands[uint16(wParam&0xFFFF)]; ok {
				return 0, ui.invoke(id, msg, wParam, lParam)
			}
			return 0, false
		}
		if lParam != 0 {
			if id, ok := ui.IDOf(WindowHandle(w32.HWND(lParam))); ok {
				return 0, ui.invoke(id, msg, wParam, lParam)
			}
			return 0, false
		}
	}
	id, ok := ui.IDOf(WindowHandle(window))
	if !ok {
		return 0, false
	}
	return 0, ui.invoke(id, msg, wParam, lParam)
}

// invoke runs the handler bound to (id, msg) if there is one. A panicking
// handler must not take the message loop down or corrupt the registry, it
// is recovered here and turned into an error on the tree's error path.
func (ui *Ui[ID]) invoke(id ID, msg uint32, wParam, lParam uintptr) (handled bool) {
	f, ok := ui.handlers[binding[ID]{id: id, msg: msg}]
	if !ok {
		return false
	}
	handled = true
	defer func() {
		if r := recover(); r != nil {
			ui.fail(fmt.Errorf("nwg: handler for %v (message %d) panicked: %v", id, msg, r))
		}
	}()
	f(wParam, lParam)
	return handled
}

func (ui *Ui[ID]) fail(err error) {
	if ui.onError != nil {
		ui.onError(err)
		return
	}
	ui.errs = append(ui.errs, err)
}

// SetOnError installs f as the tree's error sink for faults that happen
// during message dispatch. Without a sink such errors accumulate and can
// be drained with Errors.
func (ui *Ui[ID]) SetOnError(f func(error)) {
	ui.onError = f
}

// Errors returns the accumulated dispatch errors and clears them.
func (ui *Ui[ID]) Errors() []error {
	errs := ui.errs
	ui.errs = nil
	return errs
}
