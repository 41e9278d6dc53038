//go:build windows

package nwg

import (
	"errors"
	"unicode/utf16"

	"github.com/gonutz/w32/v2"
)

type FontDesc struct {
	Name       string
	Height     int
	Bold       bool
	Italic     bool
	Underlined bool
	StrikedOut bool
}

type Font struct {
	Desc   FontDesc
	handle w32.HFONT
}

func (d FontDesc) weight() int32 {
	if d.Bold {
		return w32.FW_BOLD
	}
	return w32.FW_NORMAL
}

func (d FontDesc) logfont() w32.LOGFONT {
	f := w32.LOGFONT{
		Height:         int32(d.Height),
		Weight:         d.weight(),
		Italic:         flag(d.Italic),
		Underline:      flag(d.Underlined),
		StrikeOut:      flag(d.StrikedOut),
		CharSet:        w32.DEFAULT_CHARSET,
		OutPrecision:   w32.OUT_CHARACTER_PRECIS,
		ClipPrecision:  w32.CLIP_CHARACTER_PRECIS,
		Quality:        w32.DEFAULT_QUALITY,
		PitchAndFamily: w32.DEFAULT_PITCH | w32.FF_DONTCARE,
	}
	copy(f.FaceName[:], utf16.Encode([]rune(d.Name)))
	return f
}

func flag(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// NewFont creates a font resource from the description. The caller owns
// the handle until the font is registered in a tree, after which Ui.Close
// releases it.
func NewFont(desc FontDesc) (*Font, error) {
	logfont := desc.logfont()
	handle := w32.CreateFontIndirect(&logfont)
	if handle == 0 {
		return nil, errors.New("nwg.NewFont: cannot create a font from this description")
	}
	return &Font{Desc: desc, handle: handle}, nil
}

func (f *Font) Handle() w32.HFONT { return f.handle }

// AddFont creates a font from the description and registers it under id.
// The tree owns the font handle from here on.
func (ui *Ui[ID]) AddFont(id ID, desc FontDesc) (*Font, error) {
	font, err := NewFont(desc)
	if err != nil {
		return nil, err
	}
	if err := ui.Insert(id, FontHandle(font.handle)); err != nil {
		w32.DeleteObject(w32.HGDIOBJ(font.handle))
		return nil, err
	}
	return font, nil
}

// SetWindowFont assigns the font to the window. A nil font resets the
// window to the system default.
func SetWindowFont(window w32.HWND, font *Font, redraw bool) {
	var handle w32.HFONT
	if font != nil {
		handle = font.handle
	}
	var lParam uintptr
	if redraw {
		lParam = 1
	}
	w32.SendMessage(window, w32.WM_SETFONT, uintptr(handle), lParam)
}

// ApplyFont assigns the font registered under fontID to the window
// registered under windowID. Both identifiers are narrowed through the
// typed accessors, so mixing the two up fails with a descriptive error
// instead of crashing inside the OS call.
func (ui *Ui[ID]) ApplyFont(windowID, fontID ID) error {
	window, err := ui.WindowOf(windowID, "ApplyFont target")
	if err != nil {
		return err
	}
	font, err := ui.FontOf(fontID, "ApplyFont font")
	if err != nil {
		return err
	}
	w32.SendMessage(window, w32.WM_SETFONT, uintptr(font), 1)
	return nil
}
