//go:build windows

package nwg

import (
	"fmt"

	"github.com/gonutz/w32/v2"
)

// NewButton returns a template for a push button placed in the window
// registered under parent.
func NewButton[ID comparable](parent ID) *Button[ID] {
	return &Button[ID]{parent: parent}
}

type Button[ID comparable] struct {
	handle  w32.HWND
	parent  ID
	text    string
	x       int
	y       int
	width   int
	height  int
	onClick func()
}

func (b *Button[ID]) Text() string { return b.text }

func (b *Button[ID]) SetText(text string) *Button[ID] {
	b.text = text
	if b.handle != 0 {
		w32.SetWindowText(b.handle, text)
	}
	return b
}

func (b *Button[ID]) SetBounds(x, y, width, height int) *Button[ID] {
	b.x, b.y, b.width, b.height = x, y, width, height
	if b.handle != 0 {
		w32.SetWindowPos(
			b.handle, 0,
			b.x, b.y, b.width, b.height,
			w32.SWP_NOOWNERZORDER|w32.SWP_NOZORDER,
		)
	}
	return b
}

func (b *Button[ID]) SetOnClick(f func()) *Button[ID] {
	b.onClick = f
	return b
}

func (b *Button[ID]) Handle() w32.HWND { return b.handle }

// Create builds the button as a child of its parent window. The parent
// identifier must resolve to a window handle.
func (b *Button[ID]) Create(ui *Ui[ID], id ID) (AnyHandle, error) {
	parent, err := ui.WindowOf(b.parent, "Button parent")
	if err != nil {
		return AnyHandle{}, err
	}
	handle := w32.CreateWindowExStr(
		0,
		"BUTTON",
		b.text,
		w32.WS_VISIBLE|w32.WS_CHILD|w32.WS_TABSTOP|w32.BS_DEFPUSHBUTTON,
		b.x, b.y, b.width, b.height,
		parent, 0, w32.GetModuleHandle(""), nil,
	)
	if handle == 0 {
		return AnyHandle{}, fmt.Errorf("nwg.Button.Create: %w", ErrWindowCreation)
	}
	b.handle = handle
	if b.onClick != nil {
		ui.Bind(id, w32.WM_COMMAND, func(wParam, lParam uintptr) {
			b.onClick()
		})
	}
	return WindowHandle(handle), nil
}
