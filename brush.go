//go:build windows

package nwg

import (
	"fmt"

	"github.com/gonutz/w32/v2"
)

// AddSysColorBrush registers the brush for the given system color index,
// one of the w32.COLOR_... constants, under id. System color brushes are
// cached by the OS, deleting them at teardown is a harmless no-op.
func (ui *Ui[ID]) AddSysColorBrush(id ID, colorIndex int) (w32.HBRUSH, error) {
	brush := w32.GetSysColorBrush(colorIndex)
	if brush == 0 {
		return 0, fmt.Errorf("nwg.AddSysColorBrush: no brush for system color %d", colorIndex)
	}
	if err := ui.Insert(id, BrushHandle(brush)); err != nil {
		return 0, err
	}
	return brush, nil
}
