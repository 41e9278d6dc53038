//go:build windows

package nwg

import (
	"golang.org/x/sys/windows"

	"github.com/gonutz/w32/v2"
)

// user32 procs that the w32 binding surface does not cover.
var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procEnumChildWindows = user32.NewProc("EnumChildWindows")
	procGetMenu          = user32.NewProc("GetMenu")
	procGetSubMenu       = user32.NewProc("GetSubMenu")
	procGetMenuItemCount = user32.NewProc("GetMenuItemCount")
	procGetMenuItemID    = user32.NewProc("GetMenuItemID")
	procDestroyMenu      = user32.NewProc("DestroyMenu")
)

func enumChildWindows(parent w32.HWND, callback, lParam uintptr) {
	procEnumChildWindows.Call(uintptr(parent), callback, lParam)
}

func windowMenu(window w32.HWND) w32.HMENU {
	menu, _, _ := procGetMenu.Call(uintptr(window))
	return w32.HMENU(menu)
}

func subMenu(menu w32.HMENU, pos int) w32.HMENU {
	sub, _, _ := procGetSubMenu.Call(uintptr(menu), uintptr(pos))
	return w32.HMENU(sub)
}

func menuItemCount(menu w32.HMENU) int {
	n, _, _ := procGetMenuItemCount.Call(uintptr(menu))
	return int(int32(n))
}

// menuItemID returns the command id of the item at pos, or -1 as uint32 if
// the item opens a sub-menu.
func menuItemID(menu w32.HMENU, pos int) uint32 {
	id, _, _ := procGetMenuItemID.Call(uintptr(menu), uintptr(pos))
	return uint32(id)
}

func destroyMenu(menu w32.HMENU) {
	procDestroyMenu.Call(uintptr(menu))
}
