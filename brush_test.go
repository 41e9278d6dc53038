//go:build windows

package nwg

import (
	"testing"

	"github.com/gonutz/check"
	"github.com/gonutz/w32/v2"
)

func TestSysColorBrushesRegisterAsBrushHandles(t *testing.T) {
	ui := New[string]()
	defer ui.Close()

	brush, err := ui.AddSysColorBrush("background", w32.COLOR_BTNFACE)
	check.Eq(t, err, nil)
	check.Neq(t, brush, w32.HBRUSH(0))

	handle, err := ui.HandleOf("background")
	check.Eq(t, err, nil)
	registered, ok := handle.Hbrush()
	check.Eq(t, ok, true)
	check.Eq(t, registered, brush)

	// a brush is neither a window nor a font
	_, err = ui.WindowOf("background", "brush as parent")
	check.Eq(t, err == nil, false)
	_, err = ui.FontOf("background", "brush as font")
	check.Eq(t, err == nil, false)
}
