//go:build windows

package nwg

import (
	"testing"

	"github.com/gonutz/check"
)

func idSet[ID comparable](ids []ID) map[ID]bool {
	set := make(map[ID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func TestListChildrenOfAnEmptyWindow(t *testing.T) {
	ui := New[string]()
	defer ui.Close()

	check.Eq(t, ui.Add("main", NewWindow[string]()), nil)
	root, err := ui.WindowOf("main", "test")
	check.Eq(t, err, nil)

	check.Eq(t, len(ListChildren(root, ui)), 0)
}

func TestListChildrenFindsRegisteredControls(t *testing.T) {
	ui := New[string]()
	defer ui.Close()

	check.Eq(t, ui.Add("main", NewWindow[string]()), nil)
	check.Eq(t, ui.Add("ok", NewButton[string]("main")), nil)
	check.Eq(t, ui.Add("cancel", NewButton[string]("main")), nil)

	root, err := ui.WindowOf("main", "test")
	check.Eq(t, err, nil)

	// a foreign window below the same root stays invisible to the walk
	createTestWindow(t, root)

	// order is OS enumeration order, compare as a set
	children := idSet(ListChildren(root, ui))
	check.Eq(t, children, map[string]bool{"ok": true, "cancel": true})
}

func TestListChildrenIgnoresOtherTrees(t *testing.T) {
	ui := New[string]()
	defer ui.Close()
	other := New[string]()
	defer other.Close()

	check.Eq(t, ui.Add("main", NewWindow[string]()), nil)
	root, err := ui.WindowOf("main", "test")
	check.Eq(t, err, nil)

	// a control from another tree under our root
	check.Eq(t, other.Insert("foreign root", WindowHandle(root)), nil)
	check.Eq(t, other.Add("foreign", NewButton[string]("foreign root")), nil)

	check.Eq(t, len(ListChildren(root, ui)), 0)

	foreign := idSet(ListChildren(root, other))
	check.Eq(t, foreign, map[string]bool{"foreign": true})
}

func TestListChildrenIncludesMenuItems(t *testing.T) {
	ui := New[string]()
	defer ui.Close()

	check.Eq(t, ui.Add("main", NewWindow[string]()), nil)

	bar := NewMainMenu[string]()
	file := NewMenu[string]("file", "&File")
	file.Add(NewMenuString[string]("file.open", "&Open"))
	file.Add(NewMenuSeparator())
	file.Add(NewMenuString[string]("file.exit", "E&xit"))
	bar.Add(file)
	check.Eq(t, AttachMenu(ui, "main", bar), nil)

	check.Eq(t, ui.Add("ok", NewButton[string]("main")), nil)

	root, err := ui.WindowOf("main", "test")
	check.Eq(t, err, nil)

	children := idSet(ListChildren(root, ui))
	check.Eq(t, children, map[string]bool{
		"file":      true,
		"file.open": true,
		"file.exit": true,
		"ok":        true,
	})
}

func TestRegistryIsReadOnlyDuringEnumeration(t *testing.T) {
	ui := New[string]()
	defer ui.Close()

	check.Eq(t, ui.Add("main", NewWindow[string]()), nil)
	check.Eq(t, ui.Add("ok", NewButton[string]("main")), nil)
	root, err := ui.WindowOf("main", "test")
	check.Eq(t, err, nil)

	// reach into the walk through a bound handler is not possible here,
	// so simulate the callback's view directly
	ui.walking = true
	check.Eq(t, ui.Insert("late", FontHandle(1)), ErrEnumerating)
	_, err = ui.Remove("ok")
	check.Eq(t, err, ErrEnumerating)
	ui.walking = false

	children := idSet(ListChildren(root, ui))
	check.Eq(t, children, map[string]bool{"ok": true})
}
