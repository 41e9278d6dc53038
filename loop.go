//go:build windows

package nwg

import (
	"runtime"

	"github.com/gonutz/w32/v2"
)

// MessageLoop pumps OS messages until Exit is called and returns the exit
// code. It locks the calling goroutine to its OS thread; every tree whose
// windows it drives must have been built on this same thread.
func MessageLoop() int {
	runtime.LockOSThread()
	var msg w32.MSG
	for w32.GetMessage(&msg, 0, 0, 0) != 0 {
		w32.TranslateMessage(&msg)
		w32.DispatchMessage(&msg)
	}
	return int(msg.WParam)
}

// Exit stops the message loop. code becomes the return value of
// MessageLoop.
func Exit(code int) {
	w32.PostQuitMessage(code)
}
