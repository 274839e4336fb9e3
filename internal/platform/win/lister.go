//go:build windows

package win

import (
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/platform"
)

// Lister implements platform.WindowLister on top of EnumWindows.
type Lister struct{}

// NewLister creates a Windows window lister.
func NewLister() *Lister {
	return &Lister{}
}

// enumMu serializes enumeration: the EnumWindows callback is created once and
// collects into a package-level slice because a Go pointer cannot be smuggled
// through the callback's LPARAM.
var (
	enumMu      sync.Mutex
	enumResults []model.Window
)

var enumCallback = syscall.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
	const continueEnum = 1

	if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
		return continueEnum
	}

	title := windowTitle(hwnd)
	if title == "" {
		return continueEnum
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return continueEnum
	}

	var r rect
	procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))

	minimized, _, _ := procIsIconic.Call(hwnd)
	foreground, _, _ := procGetForegroundWindow.Call()

	enumResults = append(enumResults, model.Window{
		ID:      hwnd,
		Title:   title,
		PID:     int(pid),
		Process: processImageName(pid),
		Bounds: [4]int{
			int(r.Left), int(r.Top),
			int(r.Right - r.Left), int(r.Bottom - r.Top),
		},
		Focused:   hwnd == foreground,
		Minimized: minimized != 0,
	})
	return continueEnum
})

// ListWindows returns all visible top-level windows matching opts, in OS
// enumeration order.
func (l *Lister) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	enumMu.Lock()
	enumResults = nil
	_, _, _ = procEnumWindows.Call(enumCallback, 0)
	windows := enumResults
	enumResults = nil
	enumMu.Unlock()

	process := strings.ToLower(opts.Process)
	var out []model.Window
	for _, w := range windows {
		if process != "" && w.Process != process {
			continue
		}
		if opts.PID != 0 && w.PID != opts.PID {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func windowTitle(hwnd uintptr) string {
	var buf [512]uint16
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return syscall.UTF16ToString(buf[:n])
}

// processImageName resolves the lowercased image name of a process, or ""
// when the process cannot be opened (exited, access denied).
func processImageName(pid uint32) string {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(h)

	var buf [windows.MAX_PATH]uint16
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}
	return strings.ToLower(filepath.Base(syscall.UTF16ToString(buf[:size])))
}
