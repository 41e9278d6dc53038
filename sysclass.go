//go:build windows

package nwg

import (
	"fmt"
	"runtime"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/gonutz/w32/v2"
)

// SysclassParams describes a window class to register, see BuildSysclass.
type SysclassParams struct {
	// ClassName is the process-wide name of the class.
	ClassName string
	// WndProc is the window procedure shared by all windows of the class,
	// typically DispatchProc(). It must be able to handle messages for
	// windows it did not expect; a malformed procedure crashes at the OS
	// level, this is a caller contract, not a recoverable error.
	WndProc uintptr
}

// WindowParams describes one window to create, see BuildWindow. The params
// are consumed at creation time and not persisted.
type WindowParams struct {
	Title     string
	ClassName string
	X, Y      int
	Width     int
	Height    int
	Style     uint
	ExStyle   uint
	Parent    w32.HWND
}

// BuildSysclass registers the window class. Registering a name that
// already exists is not an error, the first caller wins and later calls
// succeed without touching the class table. Any other failure is
// ErrSystemClassCreation.
func BuildSysclass(p SysclassParams) error {
	// The already-exists check reads the thread's last error, keep the
	// goroutine on one OS thread between the two calls.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	instance := w32.GetModuleHandle("")
	if instance == 0 {
		return fmt.Errorf("nwg.BuildSysclass: %w: no module handle", ErrSystemClassCreation)
	}
	class := w32.WNDCLASSEX{
		Style:      w32.CS_HREDRAW | w32.CS_VREDRAW,
		WndProc:    p.WndProc,
		Instance:   instance,
		Cursor:     w32.LoadCursor(0, w32.MakeIntResource(w32.IDC_ARROW)),
		Background: w32.GetSysColorBrush(w32.COLOR_WINDOW),
		ClassName:  syscall.StringToUTF16Ptr(p.ClassName),
	}
	// The first use of a lazy proc resolves it with further system
	// calls that overwrite the thread's last error, resolve it now.
	windows.GetLastError()
	if atom := w32.RegisterClassEx(&class); atom == 0 {
		if windows.GetLastError() != windows.ERROR_CLASS_ALREADY_EXISTS {
			return fmt.Errorf("nwg.BuildSysclass: %w: RegisterClassEx failed", ErrSystemClassCreation)
		}
	}
	return nil
}

// BuildWindow creates one window of a previously registered class and
// returns its handle. The window is always created with WS_EX_COMPOSITED
// in addition to the requested extended styles. Failure, e.g. an invalid
// parent handle, is ErrWindowCreation and leaves no OS resource behind.
func BuildWindow(p WindowParams) (w32.HWND, error) {
	instance := w32.GetModuleHandle("")
	if instance == 0 {
		return 0, fmt.Errorf("nwg.BuildWindow: %w: no module handle", ErrWindowCreation)
	}
	window := w32.CreateWindowEx(
		p.ExStyle|w32.WS_EX_COMPOSITED,
		syscall.StringToUTF16Ptr(p.ClassName),
		syscall.StringToUTF16Ptr(p.Title),
		p.Style,
		p.X, p.Y, p.Width, p.Height,
		p.Parent, 0, instance, nil,
	)
	if window == 0 {
		return 0, fmt.Errorf("nwg.BuildWindow: %w: CreateWindowEx failed", ErrWindowCreation)
	}
	return window, nil
}
