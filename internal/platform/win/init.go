//go:build windows

package win

import "github.com/saptools/sapgui-cli/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		inputter := NewInputter()
		return &platform.Provider{
			Windows:       NewLister(),
			WindowManager: NewManager(inputter),
			Inputter:      inputter,
			Screenshotter: NewScreenshotter(),
			Processes:     NewProcesses(),
			Scale:         NewScaleResolver(),
		}, nil
	}
}
