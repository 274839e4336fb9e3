//go:build windows

package win

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/saptools/sapgui-cli/internal/platform"
)

const (
	// liveProcessName owns the session windows once the GUI is up.
	liveProcessName = "saplogon.exe"
	// shortcutProcessName is the launcher that hands off to the GUI.
	shortcutProcessName = "sapshcut.exe"

	defaultGUIPath = `C:\Program Files\SAP\FrontEnd\SAPGUI`
	registryKey    = `SOFTWARE\WOW6432Node\SAP\SAPGUIFrontend`
)

// Processes implements platform.ProcessManager for the Windows SAP GUI.
type Processes struct{}

// NewProcesses creates a Windows process manager.
func NewProcesses() *Processes {
	return &Processes{}
}

// Spawn launches sapshcut.exe with the connection parameters and transaction
// code in its arguments, returning the spawned pid. The shortcut tool opens
// the live saplogon.exe session and exits.
func (p *Processes) Spawn(spec platform.LaunchSpec) (int, error) {
	path := filepath.Join(guiPath(spec.GUIPath), shortcutProcessName)

	cmd := exec.Command(path,
		"-maxgui",
		"-system="+spec.System,
		"-client="+spec.Client,
		"-command="+spec.Transaction,
		"-user="+spec.User,
		"-pw="+spec.Password,
	)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", path, err)
	}
	// Released, not waited on: the shortcut hands off to saplogon.exe and
	// the session outlives it.
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}

// guiPath resolves the SAP GUI installation directory: explicit override,
// then the registry, then the conventional default.
func guiPath(override string) string {
	if override != "" {
		return override
	}
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, registryKey, registry.QUERY_VALUE)
	if err != nil {
		return defaultGUIPath
	}
	defer key.Close()

	path, _, err := key.GetStringValue("InstallationPath")
	if err != nil || path == "" {
		return defaultGUIPath
	}
	return path
}

// FindByName looks up a running process by image name via a toolhelp
// snapshot.
func (p *Processes) FindByName(name string) (int, bool) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, false
	}
	defer windows.CloseHandle(snapshot)

	name = strings.ToLower(name)
	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	if err := windows.Process32First(snapshot, &entry); err != nil {
		return 0, false
	}
	for {
		if strings.ToLower(windows.UTF16ToString(entry.ExeFile[:])) == name {
			return int(entry.ProcessID), true
		}
		if err := windows.Process32Next(snapshot, &entry); err != nil {
			return 0, false
		}
	}
}

// Cleanup force-kills both SAP GUI processes by image name. A non-zero
// taskkill exit (typically "process not found") is not an error.
func (p *Processes) Cleanup() error {
	for _, name := range []string{liveProcessName, shortcutProcessName} {
		err := exec.Command("taskkill", "/F", "/IM", name).Run()
		if err != nil && !isExitError(err) {
			return fmt.Errorf("taskkill %s: %w", name, err)
		}
	}
	return nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
