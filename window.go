//go:build windows

package nwg

import "github.com/gonutz/w32/v2"

const windowClassName = "native_windows_gui_window"

// NewWindow returns a template for a top-level window with the default
// overlapped style at the default position and size. Create it by adding
// it to a tree, see Ui.Add.
func NewWindow[ID comparable]() *Window[ID] {
	return &Window[ID]{
		x:      w32.CW_USEDEFAULT,
		y:      w32.CW_USEDEFAULT,
		width:  w32.CW_USEDEFAULT,
		height: w32.CW_USEDEFAULT,
		style:  w32.WS_OVERLAPPEDWINDOW,
	}
}

type Window[ID comparable] struct {
	handle  w32.HWND
	title   string
	x       int
	y       int
	width   int
	height  int
	style   uint
	exStyle uint
	visible bool
	onClose func()
}

func (w *Window[ID]) Title() string { return w.title }

func (w *Window[ID]) SetTitle(title string) *Window[ID] {
	w.title = title
	if w.handle != 0 {
		w32.SetWindowText(w.handle, title)
	}
	return w
}

func (w *Window[ID]) Bounds() (x, y, width, height int) {
	return w.x, w.y, w.width, w.height
}

func (w *Window[ID]) SetBounds(x, y, width, height int) *Window[ID] {
	w.x, w.y, w.width, w.height = x, y, width, height
	if w.handle != 0 {
		w32.SetWindowPos(
			w.handle, 0,
			w.x, w.y, w.width, w.height,
			w32.SWP_NOOWNERZORDER|w32.SWP_NOZORDER,
		)
	}
	return w
}

func (w *Window[ID]) Style() uint { return w.style }

func (w *Window[ID]) SetStyle(style uint) *Window[ID] {
	w.style = style
	return w
}

func (w *Window[ID]) ExtendedStyle() uint { return w.exStyle }

func (w *Window[ID]) SetExtendedStyle(exStyle uint) *Window[ID] {
	w.exStyle = exStyle
	return w
}

func (w *Window[ID]) SetVisible(v bool) *Window[ID] {
	w.visible = v
	if w.handle != 0 {
		if v {
			w32.ShowWindow(w.handle, w32.SW_SHOW)
		} else {
			w32.ShowWindow(w.handle, w32.SW_HIDE)
		}
	}
	return w
}

// SetOnClose installs f to run when the user closes the window. The
// window is destroyed afterwards.
func (w *Window[ID]) SetOnClose(f func()) *Window[ID] {
	w.onClose = f
	return w
}

// Handle returns the OS handle, 0 before Create.
func (w *Window[ID]) Handle() w32.HWND { return w.handle }

// Create registers the shared dispatch class if necessary, creates the
// window and returns its handle for registration.
func (w *Window[ID]) Create(ui *Ui[ID], id ID) (AnyHandle, error) {
	err := BuildSysclass(SysclassParams{
		ClassName: windowClassName,
		WndProc:   DispatchProc(),
	})
	if err != nil {
		return AnyHandle{}, err
	}
	handle, err := BuildWindow(WindowParams{
		Title:     w.title,
		ClassName: windowClassName,
		X:         w.x,
		Y:         w.y,
		Width:     w.width,
		Height:    w.height,
		Style:     w.style,
		ExStyle:   w.exStyle,
	})
	if err != nil {
		return AnyHandle{}, err
	}
	w.handle = handle
	if w.onClose != nil {
		ui.Bind(id, w32.WM_CLOSE, func(wParam, lParam uintptr) {
			w.onClose()
			// route destruction through the registry so the identifier
			// and the window's data slot go with the window
			if handle, err := ui.Remove(id); err == nil {
				destroyHandle(handle)
			} else {
				w32.DestroyWindow(w.handle)
			}
		})
	}
	if w.visible {
		w32.ShowWindow(handle, w32.SW_SHOW)
	}
	return WindowHandle(handle), nil
}
