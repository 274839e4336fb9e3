// Package platform defines the OS capability interfaces the controller is
// built against. Each supported OS registers a backend via init(); the
// selection rules that decide which window is the live session, when a window
// counts as activated, and which dialogs to dismiss are platform-independent
// and live in internal/controller.
package platform

import "github.com/saptools/sapgui-cli/internal/model"

// WindowLister enumerates visible top-level windows.
type WindowLister interface {
	// ListWindows returns all visible top-level windows matching opts,
	// in OS enumeration order.
	ListWindows(opts ListOptions) ([]model.Window, error)
}

// WindowManager changes window state and reports input focus.
type WindowManager interface {
	// Restore un-minimizes the window.
	Restore(w model.Window) error

	// Maximize resizes the window to fill the display. Backends that
	// cannot resize programmatically return nil.
	Maximize(w model.Window) error

	// Focus requests foreground/input focus for the window. The OS may
	// silently ignore a single request; callers re-issue it while polling
	// Focused.
	Focus(w model.Window) error

	// Focused returns the handle of the window currently holding input
	// focus, or 0 if none can be determined.
	Focused() (uintptr, error)
}

// Inputter injects synthetic mouse and keyboard events. Coordinates are in
// physical pixels; the controller applies the display scale factor before
// calling in.
type Inputter interface {
	Click(x, y int) error
	MoveMouse(x, y int) error

	// TypeText injects the literal text as key events, verbatim characters
	// only. No escaping or special-key token parsing is performed.
	TypeText(text string) error

	// Scroll issues a wheel event. A positive delta moves content down
	// (scrolling "up"), a negative delta moves content up.
	Scroll(delta int) error

	// PressKey presses and releases a named key ("enter", "tab", ...).
	PressKey(key string) error
}

// Screenshotter captures the primary display.
type Screenshotter interface {
	// CaptureScreen captures the full primary display as PNG bytes.
	CaptureScreen() ([]byte, error)
}

// ProcessManager launches and terminates the target application.
type ProcessManager interface {
	// Spawn starts the target application with the given connection
	// parameters and returns the spawned process id.
	Spawn(spec LaunchSpec) (int, error)

	// FindByName looks up a running process by image name
	// (case-insensitive) and returns its pid.
	FindByName(name string) (int, bool)

	// Cleanup forcibly terminates all instances of the target application.
	// Best-effort: a failed kill of an already-dead process is not an error.
	Cleanup() error
}

// ScaleResolver reports the display's logical-to-physical coordinate scale.
type ScaleResolver interface {
	// Scale returns a positive scale factor, or 1.0 when the platform
	// scale settings cannot be read. Never fails.
	Scale() float64
}
