//go:build windows

package nwg

import (
	"sync"

	"github.com/gonutz/w32/v2"
)

// A window cannot carry a Go pointer in its user data slot, the garbage
// collector would not see it. Instead GWL_USERDATA holds a small token,
// an index into this process-wide table. Token 0 means no slot.
var handleSlots slotTable

type slotTable struct {
	mu    sync.Mutex
	slots []*slot
	free  []int
}

// slot holds what a window carries out-of-band: the application data
// attached through SetHandleData and the tree that routes its messages.
type slot struct {
	data   any
	router messageRouter
}

func (t *slotTable) alloc() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n := len(t.free); n > 0 {
		i := t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[i] = &slot{}
		return i + 1
	}
	t.slots = append(t.slots, &slot{})
	return len(t.slots)
}

func (t *slotTable) release(token int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := token - 1
	if i < 0 || i >= len(t.slots) || t.slots[i] == nil {
		return
	}
	t.slots[i] = nil
	t.free = append(t.free, i)
}

// get validates the token, foreign windows can have arbitrary junk in
// their user data slot.
func (t *slotTable) get(token int) *slot {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := token - 1
	if i < 0 || i >= len(t.slots) {
		return nil
	}
	return t.slots[i]
}

func windowSlot(window w32.HWND, create bool) *slot {
	token := int(w32.GetWindowLongPtr(window, w32.GWL_USERDATA))
	if s := handleSlots.get(token); s != nil {
		return s
	}
	if !create {
		return nil
	}
	token = handleSlots.alloc()
	w32.SetWindowLongPtr(window, w32.GWL_USERDATA, uintptr(token))
	if int(w32.GetWindowLongPtr(window, w32.GWL_USERDATA)) != token {
		// dead or foreign window that cannot carry the token, keeping
		// the slot would leak it unreachably
		handleSlots.release(token)
		return nil
	}
	return handleSlots.get(token)
}

// SetHandleData attaches data to the window, overwriting any previous
// attachment. The store takes ownership of the value, mutate it through
// the pointer that HandleData returns.
func SetHandleData[T any](window w32.HWND, data T) {
	if s := windowSlot(window, true); s != nil {
		s.data = &data
	}
}

// HandleData returns a pointer to the data attached to the window. It
// fails with ErrNoHandleData if nothing is attached and with
// ErrWrongDataType if the attachment has a different type than T. The
// store is type-erased, both conditions are checked, never assumed.
func HandleData[T any](window w32.HWND) (*T, error) {
	s := windowSlot(window, false)
	if s == nil || s.data == nil {
		return nil, ErrNoHandleData
	}
	data, ok := s.data.(*T)
	if !ok {
		return nil, ErrWrongDataType
	}
	return data, nil
}

// FreeHandleData drops the data attached to the window. HandleData reports
// ErrNoHandleData until a new attachment is made. Destroying a window
// without freeing its data leaks the slot unless destruction goes through
// Ui.Close, this is a caller obligation.
func FreeHandleData(window w32.HWND) {
	token := int(w32.GetWindowLongPtr(window, w32.GWL_USERDATA))
	s := handleSlots.get(token)
	if s == nil {
		return
	}
	s.data = nil
	if s.router == nil {
		handleSlots.release(token)
		w32.SetWindowLongPtr(window, w32.GWL_USERDATA, 0)
	}
}

func setMessageRouter(window w32.HWND, r messageRouter) {
	if s := windowSlot(window, true); s != nil {
		s.router = r
	}
}

func clearMessageRouter(window w32.HWND) {
	token := int(w32.GetWindowLongPtr(window, w32.GWL_USERDATA))
	s := handleSlots.get(token)
	if s == nil {
		return
	}
	s.router = nil
	if s.data == nil {
		handleSlots.release(token)
		w32.SetWindowLongPtr(window, w32.GWL_USERDATA, 0)
	}
}

// dropWindowSlot releases everything the window carries, used by the
// registry teardown path.
func dropWindowSlot(window w32.HWND) {
	token := int(w32.GetWindowLongPtr(window, w32.GWL_USERDATA))
	if handleSlots.get(token) == nil {
		return
	}
	handleSlots.release(token)
	w32.SetWindowLongPtr(window, w32.GWL_USERDATA, 0)
}
