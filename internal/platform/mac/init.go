//go:build darwin

package mac

import "github.com/saptools/sapgui-cli/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		b := New()
		return &platform.Provider{
			Windows:       b,
			WindowManager: b,
			Inputter:      b,
			Screenshotter: b,
			Processes:     b,
			Scale:         b,
		}, nil
	}
}
