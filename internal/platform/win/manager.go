//go:build windows

package win

import (
	"fmt"

	"github.com/saptools/sapgui-cli/internal/model"
)

// Manager implements platform.WindowManager via ShowWindow and
// SetForegroundWindow.
type Manager struct {
	input *Inputter
}

// NewManager creates a Windows window manager.
func NewManager(input *Inputter) *Manager {
	return &Manager{input: input}
}

func (m *Manager) Restore(w model.Window) error {
	procShowWindow.Call(w.ID, swRestore)
	return nil
}

func (m *Manager) Maximize(w model.Window) error {
	procShowWindow.Call(w.ID, swMaximize)
	return nil
}

// Focus requests foreground for the window. Windows refuses
// SetForegroundWindow for processes that haven't received recent input
// (foreground-lock), so a synthetic Alt tap is sent first to satisfy it.
// A single call may still be ignored; callers poll Focused and re-issue.
func (m *Manager) Focus(w model.Window) error {
	m.input.tapAlt()
	ok, _, _ := procSetForegroundWindow.Call(w.ID)
	procBringWindowToTop.Call(w.ID)
	if ok == 0 {
		return fmt.Errorf("SetForegroundWindow refused for %q", w.Title)
	}
	return nil
}

func (m *Manager) Focused() (uintptr, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	return hwnd, nil
}
