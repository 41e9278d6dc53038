//go:build windows

package nwg

import (
	"errors"
	"testing"

	"github.com/gonutz/check"
	"github.com/gonutz/w32/v2"
)

func TestRegisteringAClassTwiceSucceeds(t *testing.T) {
	params := SysclassParams{
		ClassName: "nwg_test_twice_class",
		WndProc:   DispatchProc(),
	}
	check.Eq(t, BuildSysclass(params), nil)
	check.Eq(t, BuildSysclass(params), nil)
}

func TestBuildWindowFailsForUnregisteredClass(t *testing.T) {
	_, err := BuildWindow(WindowParams{
		Title:     "no class",
		ClassName: "nwg_test_never_registered",
		Width:     10,
		Height:    10,
		Style:     w32.WS_OVERLAPPED,
	})
	check.Eq(t, errors.Is(err, ErrWindowCreation), true)
}

func TestBuildWindowFailsForInvalidParent(t *testing.T) {
	err := BuildSysclass(SysclassParams{
		ClassName: testClassName,
		WndProc:   DispatchProc(),
	})
	check.Eq(t, err, nil)

	_, err = BuildWindow(WindowParams{
		Title:     "orphan",
		ClassName: testClassName,
		Width:     10,
		Height:    10,
		Style:     w32.WS_CHILD,
		Parent:    w32.HWND(0xdead),
	})
	check.Eq(t, errors.Is(err, ErrWindowCreation), true)
}

func TestFailedCreationRegistersNothing(t *testing.T) {
	ui := New[string]()
	button := NewButton[string]("no such parent")
	err := ui.Add("btn", button)
	check.Eq(t, err, ErrKeyNotFound)
	_, err = ui.HandleOf("btn")
	check.Eq(t, err, ErrKeyNotFound)
}

func TestWindowTemplateCreatesAndRegisters(t *testing.T) {
	ui := New[string]()
	defer ui.Close()

	window := NewWindow[string]().SetTitle("main").SetBounds(0, 0, 200, 100)
	check.Eq(t, ui.Add("main", window), nil)
	check.Neq(t, window.Handle(), w32.HWND(0))

	registered, err := ui.WindowOf("main", "test")
	check.Eq(t, err, nil)
	check.Eq(t, registered, window.Handle())

	// a second control under the same identifier is rejected
	err = ui.Add("main", NewWindow[string]())
	check.Eq(t, err, ErrKeyExists)
}

func TestButtonTemplateRejectsNonWindowParent(t *testing.T) {
	ui := New[string]()
	defer ui.Close()

	_, err := ui.AddFont("font", FontDesc{Name: "Tahoma", Height: -11})
	check.Eq(t, err, nil)

	err = ui.Add("btn", NewButton[string]("font"))
	var badParent *BadParentError
	check.Eq(t, errors.As(err, &badParent), true)
}

func TestCloseReleasesEverything(t *testing.T) {
	ui := New[string]()

	window := NewWindow[string]().SetTitle("close me")
	check.Eq(t, ui.Add("main", window), nil)
	_, err := ui.AddFont("font", FontDesc{Name: "Tahoma", Height: -11})
	check.Eq(t, err, nil)
	SetHandleData(window.Handle(), testPayload{label: "state"})

	handle := window.Handle()
	ui.Close()

	_, err = ui.HandleOf("main")
	check.Eq(t, err, ErrKeyNotFound)
	_, err = ui.HandleOf("font")
	check.Eq(t, err, ErrKeyNotFound)
	check.Eq(t, w32.IsWindow(handle), false)
	_, err = HandleData[testPayload](handle)
	check.Eq(t, err, ErrNoHandleData)

	// identifiers are free again after teardown
	check.Eq(t, ui.Add("main", NewWindow[string]()), nil)
	ui.Close()
}

func TestCloseReleasesChildSlots(t *testing.T) {
	before := occupiedSlots()

	ui := New[string]()
	window := NewWindow[string]().SetTitle("parent")
	check.Eq(t, ui.Add("main", window), nil)
	check.Eq(t, ui.Add("ok", NewButton[string]("main").SetText("OK")), nil)
	check.Eq(t, occupiedSlots(), before+2)

	// Destroying the parent takes the child with it at the OS level and
	// its user data slot becomes unreadable. Teardown must release the
	// child's slot no matter which window gets destroyed first.
	ui.Close()
	check.Eq(t, occupiedSlots(), before)
}

func TestInsertOfDeadWindowAllocatesNoSlot(t *testing.T) {
	before := occupiedSlots()

	ui := New[string]()
	defer ui.Close()
	check.Eq(t, ui.Insert("ghost", WindowHandle(w32.HWND(0x5005))), nil)
	SetHandleData(w32.HWND(0x5005), testPayload{label: "lost"})

	// a window that cannot carry the token must not pin a slot
	check.Eq(t, occupiedSlots(), before)
}
