//go:build windows

package nwg

// ControlTemplate is implemented by anything that can create an OS
// resource for a UI tree: windows, child controls, resources. The core
// does not know about specific control kinds, only that a template
// produces a handle to be registered.
type ControlTemplate[ID comparable] interface {
	Create(ui *Ui[ID], id ID) (AnyHandle, error)
}

// Add creates the control described by t and registers it under id. If
// creation fails nothing is registered. If registration fails, e.g. the
// identifier is already taken, the freshly created OS resource is
// destroyed again so that no handle dangles outside the registry.
func (ui *Ui[ID]) Add(id ID, t ControlTemplate[ID]) error {
	if ui.walking {
		return ErrEnumerating
	}
	if _, ok := ui.handles[id]; ok {
		return ErrKeyExists
	}
	handle, err := t.Create(ui, id)
	if err != nil {
		return err
	}
	if err := ui.Insert(id, handle); err != nil {
		destroyHandle(handle)
		return err
	}
	return nil
}
