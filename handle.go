//go:build windows

package nwg

import "github.com/gonutz/w32/v2"

// HandleKind tags the variant stored in an AnyHandle.
type HandleKind int

const (
	KindNone HandleKind = iota
	KindWindow
	KindFont
	KindMenu
	KindMenuItem
	KindBrush
)

// AnyHandle holds one OS resource handle of any kind a UI tree can own.
// Exactly one variant is populated, the kind tag says which one. AnyHandle
// is comparable and can be used as a map key.
//
// The zero AnyHandle has KindNone and matches nothing.
type AnyHandle struct {
	kind HandleKind
	// value is the raw handle. For KindMenuItem it is the menu that owns
	// the item and item holds the item's command id.
	value uintptr
	item  uintptr
}

func WindowHandle(h w32.HWND) AnyHandle {
	return AnyHandle{kind: KindWindow, value: uintptr(h)}
}

func FontHandle(h w32.HFONT) AnyHandle {
	return AnyHandle{kind: KindFont, value: uintptr(h)}
}

func MenuHandle(h w32.HMENU) AnyHandle {
	return AnyHandle{kind: KindMenu, value: uintptr(h)}
}

// MenuItemHandle refers to one string item in the given menu. Menu items
// have no handle of their own, the OS addresses them by owning menu and
// command id.
func MenuItemHandle(menu w32.HMENU, command uint32) AnyHandle {
	return AnyHandle{kind: KindMenuItem, value: uintptr(menu), item: uintptr(command)}
}

func BrushHandle(h w32.HBRUSH) AnyHandle {
	return AnyHandle{kind: KindBrush, value: uintptr(h)}
}

func (h AnyHandle) Kind() HandleKind { return h.kind }

// Hwnd returns the window handle and whether the variant is a window.
func (h AnyHandle) Hwnd() (w32.HWND, bool) {
	return w32.HWND(h.value), h.kind == KindWindow
}

// Hfont returns the font handle and whether the variant is a font.
func (h AnyHandle) Hfont() (w32.HFONT, bool) {
	return w32.HFONT(h.value), h.kind == KindFont
}

// Hmenu returns the menu handle and whether the variant is a menu.
func (h AnyHandle) Hmenu() (w32.HMENU, bool) {
	return w32.HMENU(h.value), h.kind == KindMenu
}

// MenuItem returns the owning menu and command id of a menu item variant.
func (h AnyHandle) MenuItem() (menu w32.HMENU, command uint32, ok bool) {
	return w32.HMENU(h.value), uint32(h.item), h.kind == KindMenuItem
}

// Hbrush returns the brush handle and whether the variant is a brush.
func (h AnyHandle) Hbrush() (w32.HBRUSH, bool) {
	return w32.HBRUSH(h.value), h.kind == KindBrush
}
