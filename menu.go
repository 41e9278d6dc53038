//go:build windows

package nwg

import "github.com/gonutz/w32/v2"

// NewMainMenu returns an empty menu bar that can be attached to a window
// with AttachMenu. The bar itself carries no identifier, it is owned by
// the window.
func NewMainMenu[ID comparable]() *Menu[ID] {
	return &Menu[ID]{}
}

// NewMenu returns a menu that expands into its items when clicked. It is
// registered under id when the bar is attached.
//
// Place an ampersand in the text to underline the following character,
// e.g. "&File" to underline the "F".
func NewMenu[ID comparable](id ID, text string) *Menu[ID] {
	return &Menu[ID]{id: id, text: text}
}

type Menu[ID comparable] struct {
	id    ID
	text  string
	items []MenuEntry
}

// MenuEntry is anything that can go into a menu, see NewMenu,
// NewMenuString and NewMenuSeparator.
type MenuEntry interface {
	isMenuEntry()
}

func (*Menu[ID]) isMenuEntry() {}

// Add appends the entry to the menu.
func (m *Menu[ID]) Add(entry MenuEntry) *Menu[ID] {
	m.items = append(m.items, entry)
	return m
}

// NewMenuString returns an executable menu item registered under id when
// the bar is attached. Clicks route through the tree's dispatch like any
// other message, bind them with SetOnClick or Ui.Bind on WM_COMMAND.
func NewMenuString[ID comparable](id ID, text string) *MenuString[ID] {
	return &MenuString[ID]{id: id, text: text}
}

type MenuString[ID comparable] struct {
	id      ID
	text    string
	onClick func()
}

func (*MenuString[ID]) isMenuEntry() {}

func (m *MenuString[ID]) SetOnClick(f func()) *MenuString[ID] {
	m.onClick = f
	return m
}

// NewMenuSeparator returns a horizontal line separating regions in a
// menu. Separators carry no identifier.
func NewMenuSeparator() MenuEntry {
	return separator
}

type menuSeparator int

func (menuSeparator) isMenuEntry() {}

var separator menuSeparator

// AttachMenu builds the menu bar, hangs it off the window registered
// under windowID and registers every sub-menu and string item in the
// tree so that ListChildren reports them. Registration failure stops the
// build, already registered entries stay registered.
func AttachMenu[ID comparable](ui *Ui[ID], windowID ID, bar *Menu[ID]) error {
	window, err := ui.WindowOf(windowID, "AttachMenu window")
	if err != nil {
		return err
	}
	menuBar := w32.CreateMenu()
	if err := addMenuItems(ui, menuBar, bar.items); err != nil {
		destroyMenu(menuBar)
		return err
	}
	w32.SetMenu(window, menuBar)
	w32.DrawMenuBar(window)
	return nil
}

func addMenuItems[ID comparable](ui *Ui[ID], parent w32.HMENU, items []MenuEntry) error {
	for _, item := range items {
		switch item := item.(type) {
		case *Menu[ID]:
			sub := w32.CreateMenu()
			w32.AppendMenu(parent, w32.MF_POPUP, uintptr(sub), item.text)
			if err := ui.Insert(item.id, MenuHandle(sub)); err != nil {
				return err
			}
			if err := addMenuItems(ui, sub, item.items); err != nil {
				return err
			}
		case *MenuString[ID]:
			command := ui.nextMenuCommand()
			w32.AppendMenu(parent, w32.MF_STRING, uintptr(command), item.text)
			if err := ui.Insert(item.id, MenuItemHandle(parent, uint32(command))); err != nil {
				return err
			}
			if item.onClick != nil {
				f := item.onClick
				ui.Bind(item.id, w32.WM_COMMAND, func(wParam, lParam uintptr) {
					f()
				})
			}
		case menuSeparator:
			w32.AppendMenu(parent, w32.MF_SEPARATOR, 0, "")
		}
	}
	return nil
}
