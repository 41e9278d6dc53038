//go:build windows

package nwg

import (
	"testing"

	"github.com/gonutz/check"
	"github.com/gonutz/w32/v2"
)

const testClassName = "nwg_test_class"

// createTestWindow builds an invisible window for test use. Pass parent 0
// for a top-level window. The caller destroys it.
func createTestWindow(t *testing.T, parent w32.HWND) w32.HWND {
	t.Helper()
	err := BuildSysclass(SysclassParams{
		ClassName: testClassName,
		WndProc:   DispatchProc(),
	})
	check.Eq(t, err, nil)
	style := uint(w32.WS_OVERLAPPED)
	if parent != 0 {
		style = w32.WS_CHILD
	}
	window, err := BuildWindow(WindowParams{
		Title:     "test window",
		ClassName: testClassName,
		X:         0,
		Y:         0,
		Width:     100,
		Height:    100,
		Style:     style,
		Parent:    parent,
	})
	check.Eq(t, err, nil)
	t.Cleanup(func() {
		w32.DestroyWindow(window)
	})
	return window
}

// occupiedSlots counts the live entries in the process-wide data slot
// table. Tests run sequentially so comparing counts before and after an
// operation shows whether it leaked a slot.
func occupiedSlots() int {
	handleSlots.mu.Lock()
	defer handleSlots.mu.Unlock()
	n := 0
	for _, s := range handleSlots.slots {
		if s != nil {
			n++
		}
	}
	return n
}
