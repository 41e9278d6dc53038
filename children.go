//go:build windows

package nwg

import (
	"sync"
	"syscall"

	"github.com/gonutz/w32/v2"
)

// The enumeration callback receives its context as a token into this
// table, never as a raw Go pointer smuggled through the OS.
var enumContexts = struct {
	mu   sync.Mutex
	last uintptr
	m    map[uintptr]func(w32.HWND)
}{m: make(map[uintptr]func(w32.HWND))}

func pushEnumContext(visit func(w32.HWND)) uintptr {
	enumContexts.mu.Lock()
	defer enumContexts.mu.Unlock()
	enumContexts.last++
	enumContexts.m[enumContexts.last] = visit
	return enumContexts.last
}

func popEnumContext(token uintptr) {
	enumContexts.mu.Lock()
	defer enumContexts.mu.Unlock()
	delete(enumContexts.m, token)
}

var enumChildProc uintptr

func childCollector() uintptr {
	if enumChildProc == 0 {
		enumChildProc = syscall.NewCallback(func(window w32.HWND, lParam uintptr) uintptr {
			enumContexts.mu.Lock()
			visit := enumContexts.m[lParam]
			enumContexts.mu.Unlock()
			if visit != nil {
				visit(window)
			}
			return 1
		})
	}
	return enumChildProc
}

// ListChildren returns the identifiers of every descendant the OS reports
// under root that is registered in the tree. Windows belonging to another
// tree or to a foreign process part are silently skipped. If root owns a
// menu, the registered sub-menu and menu item identifiers are included as
// well.
//
// The registry is read-only while the walk runs, Insert and Remove fail
// with ErrEnumerating during the callback. Order follows OS enumeration
// order, only set membership is guaranteed.
func ListChildren[ID comparable](root w32.HWND, ui *Ui[ID]) []ID {
	var children []ID

	ui.walking = true
	defer func() { ui.walking = false }()

	if menu := windowMenu(root); menu != 0 {
		children = append(children, listMenuChildren(menu, ui)...)
	}

	token := pushEnumContext(func(window w32.HWND) {
		if id, ok := ui.IDOf(WindowHandle(window)); ok {
			children = append(children, id)
		}
	})
	defer popEnumContext(token)
	enumChildWindows(root, childCollector(), token)

	return children
}

func listMenuChildren[ID comparable](menu w32.HMENU, ui *Ui[ID]) []ID {
	var items []ID
	for i, n := 0, menuItemCount(menu); i < n; i++ {
		if sub := subMenu(menu, i); sub != 0 {
			if id, ok := ui.IDOf(MenuHandle(sub)); ok {
				items = append(items, id)
			}
			items = append(items, listMenuChildren(sub, ui)...)
		} else if command := menuItemID(menu, i); command != ^uint32(0) {
			if id, ok := ui.IDOf(MenuItemHandle(menu, command)); ok {
				items = append(items, id)
			}
		}
	}
	return items
}
