//go:build darwin

// Package mac implements a simplified platform backend for macOS, where the
// SAP GUI for Java ships as an app bundle. Window management and input go
// through osascript (System Events); there is no per-window maximize or
// DPI probing, mirroring the reduced capabilities of the Java client.
package mac

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/platform"
	"github.com/saptools/sapgui-cli/internal/platform/capture"
)

const defaultAppPath = "/Applications/SAP Clients/SAPGUI 7.80rev6/SAPGUI 7.80rev6.app"

// appProcessPattern matches the SAP GUI processes to list and kill.
const appProcessPattern = "SAPGUI"

func osascript(script string) (string, error) {
	out, err := exec.Command("osascript", "-e", script).Output()
	if err != nil {
		return "", fmt.Errorf("osascript failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Backend implements all platform capabilities for macOS.
type Backend struct{}

// New creates the macOS backend.
func New() *Backend {
	return &Backend{}
}

// ListWindows lists windows of processes matching the target name via System
// Events. Bounds and minimize state are reported per window; the frontmost
// process's first window is treated as focused.
func (b *Backend) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	pattern := strings.TrimSuffix(strings.ToLower(opts.Process), ".exe")
	if pattern == "" {
		pattern = strings.ToLower(appProcessPattern)
	}

	// One line per window: pid|frontmost|title|x|y|w|h
	script := fmt.Sprintf(`
set output to ""
tell application "System Events"
	repeat with proc in (every process whose name contains %q and visible is true)
		repeat with w in (every window of proc)
			set {px, py} to position of w
			set {sw, sh} to size of w
			set output to output & (unix id of proc) & "|" & (frontmost of proc) & "|" & (name of w) & "|" & px & "|" & py & "|" & sw & "|" & sh & linefeed
		end repeat
	end repeat
end tell
return output`, pattern)

	out, err := osascript(script)
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}

	var windows []model.Window
	for i, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(line, "|", 7)
		if len(parts) != 7 {
			continue
		}
		pid, _ := strconv.Atoi(parts[0])
		if opts.PID != 0 && pid != opts.PID {
			continue
		}
		x, _ := strconv.Atoi(parts[3])
		y, _ := strconv.Atoi(parts[4])
		w, _ := strconv.Atoi(parts[5])
		h, _ := strconv.Atoi(parts[6])
		windows = append(windows, model.Window{
			// System Events exposes no stable window handle; the line
			// index stands in and is only compared within one listing.
			ID:      uintptr(i + 1),
			Title:   parts[2],
			PID:     pid,
			Process: pattern,
			Bounds:  [4]int{x, y, w, h},
			Focused: parts[1] == "true" && i == 0,
		})
	}
	return windows, nil
}

func (b *Backend) Restore(w model.Window) error {
	_, err := osascript(fmt.Sprintf(
		`tell application "System Events" to set value of attribute "AXMinimized" of window %q of (first process whose unix id is %d) to false`,
		w.Title, w.PID))
	return err
}

// Maximize is a no-op: the SAP GUI for Java does not respond to programmatic
// zoom reliably, and the capture is full-display regardless.
func (b *Backend) Maximize(w model.Window) error {
	return nil
}

func (b *Backend) Focus(w model.Window) error {
	_, err := osascript(fmt.Sprintf(
		`tell application "System Events" to set frontmost of (first process whose unix id is %d) to true`,
		w.PID))
	return err
}

// Focused returns the handle the lister would assign to the frontmost
// window, which by construction is 1 when the target process is frontmost.
func (b *Backend) Focused() (uintptr, error) {
	out, err := osascript(`tell application "System Events" to return frontmost of (first process whose name contains "SAPGUI")`)
	if err != nil {
		return 0, err
	}
	if out == "true" {
		return 1, nil
	}
	return 0, nil
}

func (b *Backend) Click(x, y int) error {
	_, err := osascript(fmt.Sprintf(`tell application "System Events" to click at {%d, %d}`, x, y))
	return err
}

func (b *Backend) MoveMouse(x, y int) error {
	// System Events has no pure pointer move; the click target is set by
	// the click itself, so moving is a no-op beyond validation.
	if x < 0 || y < 0 {
		return fmt.Errorf("coordinates out of range: (%d, %d)", x, y)
	}
	return nil
}

func (b *Backend) TypeText(text string) error {
	_, err := osascript(fmt.Sprintf(`tell application "System Events" to keystroke %q`, text))
	return err
}

// Scroll maps wheel deltas onto page keys: System Events cannot synthesize
// wheel events. Positive delta pages up (content moves down).
func (b *Backend) Scroll(delta int) error {
	keyCode := 116 // page up
	if delta < 0 {
		keyCode = 121 // page down
	}
	_, err := osascript(fmt.Sprintf(`tell application "System Events" to key code %d`, keyCode))
	return err
}

func (b *Backend) PressKey(key string) error {
	codes := map[string]int{
		"enter":  36,
		"tab":    48,
		"escape": 53,
		"esc":    53,
	}
	code, ok := codes[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("unknown key: %q", key)
	}
	_, err := osascript(fmt.Sprintf(`tell application "System Events" to key code %d`, code))
	return err
}

func (b *Backend) CaptureScreen() ([]byte, error) {
	return capture.PrimaryDisplay()
}

// Spawn opens the SAP GUI app bundle. The Java client takes its connection
// parameters from its own configuration; the credentials in the launch spec
// cannot be forwarded on this platform.
func (b *Backend) Spawn(spec platform.LaunchSpec) (int, error) {
	path := spec.GUIPath
	if path == "" {
		path = os.Getenv("SAP_GUI_APP")
	}
	if path == "" {
		path = defaultAppPath
	}
	cmd := exec.Command("open", path)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}

func (b *Backend) FindByName(name string) (int, bool) {
	pattern := strings.TrimSuffix(name, ".exe")
	if pattern == "" {
		pattern = appProcessPattern
	}
	out, err := exec.Command("pgrep", "-if", pattern).Output()
	if err != nil {
		return 0, false
	}
	first := strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	pid, err := strconv.Atoi(first)
	if err != nil {
		return 0, false
	}
	return pid, true
}

// Cleanup quits the SAP GUI politely, then kills any survivors. A non-zero
// pkill exit (no matching process) is not an error.
func (b *Backend) Cleanup() error {
	_, _ = osascript(`tell application "SAPGUI" to quit`)
	if err := exec.Command("pkill", "-if", appProcessPattern).Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("pkill: %w", err)
		}
	}
	return nil
}

// Scale always reports 1.0: synthetic events on macOS already use the same
// point space as the capture APIs.
func (b *Backend) Scale() float64 {
	return 1.0
}
